package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account holds the schema definition for the Account entity: per-user
// balance of agent wall-clock seconds.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable(),
		field.Int64("balance_seconds").
			Default(0).
			Comment("Remaining agent seconds; debited when a meter ends"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
