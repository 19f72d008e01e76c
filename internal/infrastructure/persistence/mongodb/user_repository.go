package mongodb

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafabene/gamehub-backend/internal/domain/entities"
	"github.com/rafabene/gamehub-backend/internal/domain/errors"
	"github.com/rafabene/gamehub-backend/internal/domain/repositories"
	"github.com/rafabene/gamehub-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository sobre MongoDB.
// A unicidade do email é garantida pelo índice único da collection,
// não pela camada de aplicação.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository cria um novo UserRepository e garante os índices
func NewUserRepository(db *mongo.Database) (repositories.UserRepository, error) {
	repo := &UserRepository{collection: db.Collection(usersCollection)}

	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, emailIdx)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	doc := r.toDocument(user)
	doc.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return errors.ErrEmailAlreadyExists
	}
	if err != nil {
		return err
	}

	user.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// id malformado nunca referencia um documento
		return nil, nil
	}

	var doc userDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&doc), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&doc), nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, update repositories.UserUpdate) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	if update.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := bson.M{}
	if update.UserName != nil {
		set["user_name"] = *update.UserName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.ProfileImage != nil {
		set["profile_image"] = *update.ProfileImage
	}
	if update.FavouriteGames != nil {
		set["favourite_games"] = update.FavouriteGames
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, errors.ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&doc), nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.toEntity(&doc), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	// password e role ficam de fora já na query
	opts := options.Find().SetProjection(bson.M{"password": 0, "role": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(docs))
	for i := range docs {
		users = append(users, r.toEntity(&docs[i]))
	}
	return users, nil
}

// Conversores
func (r *UserRepository) toDocument(user *entities.User) *userDocument {
	return &userDocument{
		UserName:       user.UserName,
		Email:          user.Email.String(),
		Password:       user.PasswordHash,
		Role:           string(user.Role),
		ProfileImage:   user.ProfileImage,
		FavouriteGames: user.Games(),
	}
}

func (r *UserRepository) toEntity(doc *userDocument) *entities.User {
	games := doc.FavouriteGames
	if games == nil {
		games = []string{}
	}

	return &entities.User{
		ID:             doc.ID.Hex(),
		UserName:       doc.UserName,
		Email:          valueobjects.MustEmail(doc.Email),
		PasswordHash:   doc.Password,
		Role:           entities.Role(doc.Role),
		ProfileImage:   doc.ProfileImage,
		FavouriteGames: games,
	}
}
