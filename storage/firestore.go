package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gigfit/backend/config"
	"github.com/gigfit/backend/models"
)

const (
	usersCollection = "users"
	jobsCollection  = "jobs"
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.New("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserProfile updates user's profile (name, overview)
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email, name, overview string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if overview != "" {
		updates["overview"] = overview
	}

	if len(updates) == 0 {
		return nil
	}

	return f.UpdateUser(ctx, email, updates)
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SaveJob stores a triaged job and returns its document ID
func (f *FirestoreClient) SaveJob(ctx context.Context, job *models.Job) (string, error) {
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	docRef, _, err := f.client.Collection(jobsCollection).Add(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to save job: %w", err)
	}

	job.ID = docRef.ID
	return docRef.ID, nil
}

// GetJob retrieves a saved job by document ID
func (f *FirestoreClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	doc, err := f.client.Collection(jobsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("job not found")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job data: %w", err)
	}

	job.ID = doc.Ref.ID
	return &job, nil
}

// ListJobsByOwner retrieves saved jobs for a user, newest first
func (f *FirestoreClient) ListJobsByOwner(ctx context.Context, ownerEmail string, limit int) ([]models.Job, error) {
	iter := f.client.Collection(jobsCollection).
		Where("ownerEmail", "==", ownerEmail).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	jobs := make([]models.Job, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// DeleteJob removes a saved job document
func (f *FirestoreClient) DeleteJob(ctx context.Context, id string) error {
	_, err := f.client.Collection(jobsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// UpdateJobFit overwrites a job's fit classification
func (f *FirestoreClient) UpdateJobFit(ctx context.Context, id string, fit *models.FitResult) error {
	_, err := f.client.Collection(jobsCollection).Doc(id).Set(ctx, map[string]interface{}{
		"fit":       fit,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update job fit: %w", err)
	}
	return nil
}

// UpdateJobProposalURL records where a generated proposal was archived
func (f *FirestoreClient) UpdateJobProposalURL(ctx context.Context, id, proposalURL string) error {
	_, err := f.client.Collection(jobsCollection).Doc(id).Set(ctx, map[string]interface{}{
		"proposalUrl": proposalURL,
		"updatedAt":   time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update job proposal URL: %w", err)
	}
	return nil
}
