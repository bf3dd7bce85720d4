package models

import "time"

// RoomType is a purchasable accommodation option within a retreat.
// MaxQuantity is the sellable capacity; PriceCents is the unit price in
// minor currency units (never floating point).
type RoomType struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	PriceCents  int64  `bson:"priceCents" json:"priceCents"`
	MaxQuantity int    `bson:"maxQuantity" json:"maxQuantity"`
}

// ExtraActivity is an optional add-on purchasable alongside a room type.
// MaxQuantity is nil when the activity has no per-booking cap.
type ExtraActivity struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	PriceCents    int64  `bson:"priceCents" json:"priceCents"`
	AllowMultiple bool   `bson:"allowMultiple" json:"allowMultiple"`
	MaxQuantity   *int   `bson:"maxQuantity,omitempty" json:"maxQuantity,omitempty"`
	Link          string `bson:"link,omitempty" json:"link,omitempty"`
}

// ArrivalOption describes one way of getting to the retreat venue.
type ArrivalOption struct {
	Title  string `bson:"title" json:"title"`
	Detail string `bson:"detail" json:"detail"`
}

// DayPlan is one day of the retreat program.
type DayPlan struct {
	Day   string   `bson:"day" json:"day"`
	Items []string `bson:"items" json:"items"`
}

// Retreat is the marketing document for a single retreat, with its room
// types and extra activities embedded.
type Retreat struct {
	ID              string          `bson:"id" json:"id"`
	Slug            string          `bson:"slug" json:"slug"`
	Title           string          `bson:"title" json:"title"`
	Location        string          `bson:"location" json:"location"`
	Description     string          `bson:"description" json:"description"`
	FullDescription string          `bson:"fullDescription" json:"fullDescription"`
	Activities      []string        `bson:"activities" json:"activities"`
	Program         []string        `bson:"program" json:"program"`
	Image           string          `bson:"image" json:"image"`
	Date            string          `bson:"date" json:"date"`
	Price           string          `bson:"price" json:"price"`
	Published       bool            `bson:"published" json:"published"`
	ArrivalIntro    string          `bson:"arrivalIntro,omitempty" json:"arrivalIntro,omitempty"`
	ArrivalOptions  []ArrivalOption `bson:"arrivalOptions,omitempty" json:"arrivalOptions,omitempty"`
	DayByDay        []DayPlan       `bson:"dayByDay,omitempty" json:"dayByDay,omitempty"`
	Includes        []string        `bson:"includes,omitempty" json:"includes,omitempty"`
	NotIncludes     []string        `bson:"notIncludes,omitempty" json:"notIncludes,omitempty"`
	ExtraIdeas      []string        `bson:"extraIdeas,omitempty" json:"extraIdeas,omitempty"`
	RoomTypes       []RoomType      `bson:"roomTypes" json:"roomTypes"`
	ExtraActivities []ExtraActivity `bson:"extraActivities" json:"extraActivities"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}

// RoomTypeByID returns the embedded room type with the given id, or nil.
func (r *Retreat) RoomTypeByID(id string) *RoomType {
	for i := range r.RoomTypes {
		if r.RoomTypes[i].ID == id {
			return &r.RoomTypes[i]
		}
	}
	return nil
}

// ExtraByID returns the embedded extra activity with the given id, or nil.
func (r *Retreat) ExtraByID(id string) *ExtraActivity {
	for i := range r.ExtraActivities {
		if r.ExtraActivities[i].ID == id {
			return &r.ExtraActivities[i]
		}
	}
	return nil
}

// RoomTypeAvailability is a room type decorated with its remaining
// sellable units, as served by the public availability endpoints.
type RoomTypeAvailability struct {
	RoomType  `bson:",inline"`
	Available int `json:"available"`
}
