package mongodb

import "go.mongodb.org/mongo-driver/bson/primitive"

// userDocument é o documento persistido na collection "users"
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserName       string             `bson:"user_name"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Role           string             `bson:"role"`
	ProfileImage   string             `bson:"profile_image"`
	FavouriteGames []string           `bson:"favourite_games"`
}

const usersCollection = "users"
