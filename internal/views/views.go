// Package views shapes stored records into the camelCase JSON returned by the API.
package views

import (
	"time"

	"bjjsocial/internal/models"
)

// PublicUser is the user projection embedded in every response. It never
// carries the password hash.
type PublicUser struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	Belt            string    `json:"belt"`
	Stripes         int       `json:"stripes"`
	Weight          *string   `json:"weight"`
	WeightClass     *string   `json:"weightClass"`
	School          *string   `json:"school"`
	Instructor      *string   `json:"instructor"`
	YearsTraining   *string   `json:"yearsTraining"`
	Competitions    int       `json:"competitions"`
	Wins            int       `json:"wins"`
	Losses          int       `json:"losses"`
	Bio             *string   `json:"bio"`
	Location        *string   `json:"location"`
	AgeDivision     *string   `json:"ageDivision"`
	Gender          *string   `json:"gender"`
	FollowersCount  int       `json:"followersCount"`
	FollowingCount  int       `json:"followingCount"`
	PostsCount      int       `json:"postsCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func User(u *models.User) PublicUser {
	return PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Belt:            u.Belt,
		Stripes:         u.Stripes,
		Weight:          u.Weight,
		WeightClass:     u.WeightClass,
		School:          u.School,
		Instructor:      u.Instructor,
		YearsTraining:   u.YearsTraining,
		Competitions:    u.Competitions,
		Wins:            u.Wins,
		Losses:          u.Losses,
		Bio:             u.Bio,
		Location:        u.Location,
		AgeDivision:     u.AgeDivision,
		Gender:          u.Gender,
		FollowersCount:  u.FollowersCount,
		FollowingCount:  u.FollowingCount,
		PostsCount:      u.PostsCount,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func Users(us []models.User) []PublicUser {
	out := make([]PublicUser, 0, len(us))
	for i := range us {
		out = append(out, User(&us[i]))
	}
	return out
}

// optionalUser shapes a relation that may not have been loaded.
func optionalUser(u *models.User) *PublicUser {
	if u == nil || u.ID == "" {
		return nil
	}
	v := User(u)
	return &v
}

type Post struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	Type      string      `json:"type"`
	Location  *string     `json:"location"`
	ImageURLs []string    `json:"imageUrls"`
	Likes     int         `json:"likes"`
	Shares    int         `json:"shares"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	User      *PublicUser `json:"user,omitempty"`
}

func PostOf(p *models.Post) Post {
	images := p.ImageURLs
	if images == nil {
		images = []string{}
	}
	return Post{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		Type:      p.Type,
		Location:  p.Location,
		ImageURLs: images,
		Likes:     p.Likes,
		Shares:    p.Shares,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		User:      optionalUser(&p.User),
	}
}

func Posts(ps []models.Post) []Post {
	out := make([]Post, 0, len(ps))
	for i := range ps {
		out = append(out, PostOf(&ps[i]))
	}
	return out
}

type Comment struct {
	ID        string      `json:"id"`
	PostID    string      `json:"postId"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *PublicUser `json:"user,omitempty"`
}

func CommentOf(c *models.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      optionalUser(&c.User),
	}
}

func Comments(cs []models.Comment) []Comment {
	out := make([]Comment, 0, len(cs))
	for i := range cs {
		out = append(out, CommentOf(&cs[i]))
	}
	return out
}
