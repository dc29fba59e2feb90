// Package authz is the single place where write access to articles, comments
// and user roles is decided. Handlers load the records, the engine judges
// them; it performs no I/O of its own.
package authz

import (
	"newsroom/internal/content"
	"newsroom/internal/user"
)

type Outcome int

const (
	Allow Outcome = iota
	Unauthenticated
	Forbidden
	NotFound
)

// Decision is the engine's verdict plus a human-readable reason for denials.
// The three denial kinds are never collapsed into one generic message.
type Decision struct {
	Outcome Outcome
	Reason  string
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func unauthenticated() Decision {
	return Decision{Outcome: Unauthenticated, Reason: "You are not signed in"}
}

func forbidden(reason string) Decision {
	return Decision{Outcome: Forbidden, Reason: reason}
}

func notFound(reason string) Decision {
	return Decision{Outcome: NotFound, Reason: reason}
}

// CanCreateArticle admits journalists and admins. A signed-in plain user gets
// a denial distinct from "not signed in".
func CanCreateArticle(actor *user.User) Decision {
	if actor == nil {
		return unauthenticated()
	}
	if actor.Rank().AtMost(user.RankJournalist) {
		return allow()
	}
	return forbidden("Only journalists and admins can publish articles")
}

// CanModifyArticle covers both update and delete: the journalist who authored
// the article, or an admin. Ownership alone is not enough, and neither is the
// journalist rank without ownership.
func CanModifyArticle(actor *user.User, article *content.Article) Decision {
	if article == nil {
		return notFound("Article not found")
	}
	if actor == nil {
		return unauthenticated()
	}
	if actor.IsAdmin() {
		return allow()
	}
	if article.AuthoredBy(actor.ID) && actor.Rank() == user.RankJournalist {
		return allow()
	}
	return forbidden("You can only modify articles you authored")
}

// CanCreateComment lets any signed-in user comment on an existing article.
func CanCreateComment(actor *user.User, article *content.Article) Decision {
	if article == nil {
		return notFound("Article not found")
	}
	if actor == nil {
		return unauthenticated()
	}
	return allow()
}

// CanUpdateComment admits the comment's author and nobody else. There is no
// admin bypass here; delete has one, update does not.
func CanUpdateComment(actor *user.User, comment *content.Comment) Decision {
	if comment == nil {
		return notFound("Comment not found")
	}
	if actor == nil {
		return unauthenticated()
	}
	if comment.AuthoredBy(actor.ID) {
		return allow()
	}
	return forbidden("You can only edit your own comments")
}

// CanDeleteComment admits the comment's author, the journalist who authored
// the parent article, and admins.
func CanDeleteComment(actor *user.User, comment *content.Comment, parent *content.Article) Decision {
	if comment == nil {
		return notFound("Comment not found")
	}
	if parent == nil {
		return notFound("Article not found")
	}
	if actor == nil {
		return unauthenticated()
	}
	if comment.AuthoredBy(actor.ID) {
		return allow()
	}
	if parent.AuthoredBy(actor.ID) && actor.Rank() == user.RankJournalist {
		return allow()
	}
	if actor.IsAdmin() {
		return allow()
	}
	return forbidden("You cannot delete this comment")
}

// CanChangeRole admits admins only, and categorically protects the creator
// account: its role assignment is rejected regardless of the caller.
func CanChangeRole(actor *user.User, target *user.User, creatorID uint) Decision {
	if target == nil {
		return notFound("User not found")
	}
	if actor == nil {
		return unauthenticated()
	}
	if !actor.IsAdmin() {
		return forbidden("Only admins can change roles")
	}
	if target.ID == creatorID {
		return forbidden("This account's role is protected")
	}
	return allow()
}

// CanListUsers admits admins only.
func CanListUsers(actor *user.User) Decision {
	if actor == nil {
		return unauthenticated()
	}
	if !actor.IsAdmin() {
		return forbidden("Only admins can list users")
	}
	return allow()
}
