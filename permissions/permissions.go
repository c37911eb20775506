// Package permissions holds the authorization predicates. Each predicate is
// a pure function over the authenticated caller and the target entity, so
// the decisions are trivial to test in isolation.
package permissions

import "blog-admin/models"

// CanManageUser allows a caller to update or delete a user record when the
// caller is that user, or when the caller is an admin.
func CanManageUser(caller *models.User, target *models.User) bool {
	if caller == nil || target == nil {
		return false
	}
	if caller.ID == target.ID {
		return true
	}
	return caller.IsAdmin()
}

// CanManageArticle allows only the article's author. Admins get no override
// here, unlike CanManageUser.
func CanManageArticle(caller *models.User, article *models.Article) bool {
	if caller == nil || article == nil {
		return false
	}
	return article.UserID == caller.ID
}

// CanCreateArticle allows any authenticated caller. Authorship is forced to
// the caller's identity by the service layer.
func CanCreateArticle(caller *models.User) bool {
	return caller != nil
}
