package account

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "accounts"

// Repository persists accounts in a MongoDB collection.
//
// Writes are full-document replacements: concurrent requests against the
// same account race last-write-wins on top of Mongo's per-document write
// atomicity, so only the most recently stored token material is honored.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository returns a Repository over the accounts collection of db.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique indexes on username and email plus the
// sparse lookup indexes for the two token-hash fields. Call once at startup.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email_verification_token_hash", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "forgot_password_token_hash", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Create inserts a new account. A username or email collision returns
// ErrDuplicate.
func (r *Repository) Create(ctx context.Context, acc *Account) error {
	if _, err := r.coll.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Save replaces the stored document with acc and bumps UpdatedAt.
func (r *Repository) Save(ctx context.Context, acc *Account) error {
	acc.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": acc.ID}, acc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return errors.Join(ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID returns the account with the given identifier.
func (r *Repository) FindByID(ctx context.Context, id string) (*Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUsernameOrEmail returns the account matching either identifier.
// Empty identifiers are excluded from the match so a blank username cannot
// accidentally match an account with no username.
func (r *Repository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*Account, error) {
	var or []bson.M
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, ErrNotFound
	}

	return r.findOne(ctx, bson.M{"$or": or})
}

// FindByVerificationTokenHash returns the account holding the given
// email-verification token hash.
func (r *Repository) FindByVerificationTokenHash(ctx context.Context, hash string) (*Account, error) {
	if hash == "" {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"email_verification_token_hash": hash})
}

// FindByResetTokenHash returns the account holding the given password-reset
// token hash.
func (r *Repository) FindByResetTokenHash(ctx context.Context, hash string) (*Account, error) {
	if hash == "" {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"forgot_password_token_hash": hash})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*Account, error) {
	var acc Account
	if err := r.coll.FindOne(ctx, filter).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &acc, nil
}
