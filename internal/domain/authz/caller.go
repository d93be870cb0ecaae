// Package authz holds the caller identity and the authorization policy.
//
// Every rule is a pure function of the caller and a snapshot of the target
// entity; nothing here touches storage.
package authz

// Caller is the trusted identity assertion presented with a gated call.
// A nil *Caller means no identity was presented.
type Caller struct {
	SubjectID string
	IsAdmin   bool
}

func (c *Caller) Authenticated() bool {
	return c != nil && c.SubjectID != ""
}

func (c *Caller) Admin() bool {
	return c.Authenticated() && c.IsAdmin
}

// ID returns the subject id, or "" for an anonymous caller.
func (c *Caller) ID() string {
	if c == nil {
		return ""
	}
	return c.SubjectID
}

// OperatorSubject identifies trusted tooling such as the seeder. Tokens are
// only ever issued for user ids, so it cannot be presented over the wire.
const OperatorSubject = "operator"

func Operator() *Caller {
	return &Caller{SubjectID: OperatorSubject, IsAdmin: true}
}
