package user

// User is the projected read shape of a user document. Users are
// read-only through this API; everything beyond the identity fields is
// opaque pass-through owned by the account system.
type User struct {
	Username      string `bson:"username" json:"username"`
	FullName      string `bson:"fullName" json:"fullName"`
	Email         string `bson:"email" json:"email"`
	Roles         any    `bson:"roles,omitempty" json:"roles,omitempty"`
	Status        any    `bson:"status,omitempty" json:"status,omitempty"`
	Address       any    `bson:"address,omitempty" json:"address,omitempty"`
	Preferences   any    `bson:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt     any    `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastUpdated   any    `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
	Activity      any    `bson:"activity,omitempty" json:"activity,omitempty"`
	Notifications any    `bson:"notifications,omitempty" json:"notifications,omitempty"`
}

// Filter holds the optional search predicates. Both match as
// case-insensitive substrings.
type Filter struct {
	Username *string
	Email    *string
}
