package model

import "time"

// Profile is a ministry staff profile row.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	Bio       string    `db:"bio" json:"bio"`
	PhotoURL  string    `db:"photo_url" json:"photoUrl"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
