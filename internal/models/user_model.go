package models

import "time"

// User represents a resident's profile document. The Firebase Auth UID is
// the document ID.
type User struct {
	ID        string `json:"id" firestore:"-"`
	Email     string `json:"email" firestore:"email"`
	Name      string `json:"name" firestore:"name"`
	Address   string `json:"address,omitempty" firestore:"address,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	PhotoURL  string `json:"photoURL,omitempty" firestore:"photoUrl,omitempty"`
	AreaID    string `json:"areaId,omitempty" firestore:"areaId,omitempty"`
	AreaName  string `json:"areaName,omitempty" firestore:"areaName,omitempty"`
	RouteID   string `json:"routeId,omitempty" firestore:"routeId,omitempty"`
	RouteName string `json:"routeName,omitempty" firestore:"routeName,omitempty"`

	// OnboardingCompleted is the single client preference the app persists;
	// kept on the profile so every device of the account sees the same value.
	OnboardingCompleted bool `json:"onboardingCompleted" firestore:"onboardingCompleted"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
