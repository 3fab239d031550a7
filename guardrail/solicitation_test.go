package guardrail_test

import (
	"reflect"
	"testing"

	"github.com/gigfit/backend/guardrail"
)

func TestDetectSolicitation_NoFalsePositiveOnGenericText(t *testing.T) {
	res := guardrail.DetectSolicitation("I need a developer with 5 years of experience")

	if res.Requested {
		t.Error("generic experience phrasing must not trigger solicitation")
	}
	if len(res.MatchedPhrases) != 0 {
		t.Errorf("MatchedPhrases = %v, want empty", res.MatchedPhrases)
	}
}

func TestDetectSolicitation_Categories(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Please send your email address before we start", guardrail.CategoryEmail},
		{"Leave your phone number in the cover letter", guardrail.CategoryPhone},
		{"We coordinate on WhatsApp after hiring", guardrail.CategoryMessagingApp},
		{"Apply via our website to be considered", guardrail.CategoryWebsite},
		{"Add me on LinkedIn first", guardrail.CategorySocialProfile},
		{"Contact me directly to discuss the rate", guardrail.CategoryDirectContact},
		{"Include your contact details in the proposal", guardrail.CategoryContactDetails},
		{"Tell us where are you located before applying", guardrail.CategoryLocation},
	}
	for _, c := range cases {
		res := guardrail.DetectSolicitation(c.text)
		if !res.Requested {
			t.Errorf("DetectSolicitation(%q) should be requested", c.text)
			continue
		}
		found := false
		for _, tag := range res.MatchedPhrases {
			if tag == c.want {
				found = true
			}
		}
		if !found {
			t.Errorf("DetectSolicitation(%q) = %v, want tag %q", c.text, res.MatchedPhrases, c.want)
		}
	}
}

func TestDetectSolicitation_DeduplicatesTags(t *testing.T) {
	res := guardrail.DetectSolicitation("Email me, e-mail us, send your email now: boss@corp.com")

	count := 0
	for _, tag := range res.MatchedPhrases {
		if tag == guardrail.CategoryEmail {
			count++
		}
	}
	if count != 1 {
		t.Errorf("email tag should appear exactly once, got %v", res.MatchedPhrases)
	}
}

func TestDetectSolicitation_ReturnsTagsNotSpans(t *testing.T) {
	res := guardrail.DetectSolicitation("Ping me on Telegram: @secret_handle")

	want := []string{guardrail.CategoryMessagingApp}
	if !reflect.DeepEqual(res.MatchedPhrases, want) {
		t.Errorf("MatchedPhrases = %v, want %v (category tags only, never raw spans)", res.MatchedPhrases, want)
	}
}
