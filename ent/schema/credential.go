package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential is the local login record for the offline auth gate.
// Passwords are stored as SHA-256 digests, never plaintext.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("password_digest").
			NotEmpty().
			Comment("Hex-encoded SHA-256 of the password"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
