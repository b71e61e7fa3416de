// internal/domain/models/content.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is a stored media asset: the delivered URL plus the opaque handle
// the media gateway needs to delete it later. The handle is mandatory at
// creation time and must be replaced whenever the image changes.
type Image struct {
	URL    string `bson:"url" json:"url"`
	Handle string `bson:"handle" json:"handle"`
}

// Service is an offered service shown on the public site.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Image       Image              `bson:"image" json:"image"`
	Order       int                `bson:"order" json:"order"`
	Active      bool               `bson:"active" json:"isActive"`

	// SubServices reference blog posts by id. The reference is a soft link:
	// it is resolved by the client at read time and a dangling id is
	// tolerated, not validated at write time.
	SubServices []SubService `bson:"sub_services,omitempty" json:"subServices,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SubService is an ordered entry under a Service pointing at a blog post.
type SubService struct {
	Title  string `bson:"title" json:"title"`
	BlogID string `bson:"blog_id" json:"blogId"`
}

// Project is a portfolio entry.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Location    string             `bson:"location" json:"location"`
	Year        string             `bson:"year" json:"year"`
	Client      string             `bson:"client" json:"client"`
	Description string             `bson:"description" json:"description"`
	Image       Image              `bson:"image" json:"image"`
	Gallery     []Image            `bson:"gallery,omitempty" json:"gallery,omitempty"`
	Active      bool               `bson:"active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Blog is a blog post. Views counts successful public single-item fetches.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Slug      string             `bson:"slug" json:"slug"`
	Excerpt   string             `bson:"excerpt" json:"excerpt"`
	Content   string             `bson:"content" json:"content"`
	Category  string             `bson:"category" json:"category"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Image     Image              `bson:"image" json:"image"`
	Published bool               `bson:"published" json:"published"`
	Views     int64              `bson:"views" json:"views"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FAQ is a question/answer pair shown on the public site.
type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
	Order    int                `bson:"order" json:"order"`
	Active   bool               `bson:"active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Position    string             `bson:"position" json:"position"`
	Company     string             `bson:"company" json:"company"`
	Testimonial string             `bson:"testimonial" json:"testimonial"`
	Rating      int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Order       int                `bson:"order" json:"order"`
	Active      bool               `bson:"active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// TrustedBy is a client/partner logo entry.
type TrustedBy struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Logo   string             `bson:"logo" json:"logo"`
	Order  int                `bson:"order" json:"order"`
	Active bool               `bson:"active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
