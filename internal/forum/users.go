package forum

import "civicboard/internal/models"

// Profile returns the caller's own profile, counters, follow list, and
// notifications.
func (e *Engine) Profile(actor Identity) (*models.User, error) {
	user, err := e.store.User(actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNotFound("user not found")
	}
	return user, nil
}

// MarkNotificationsRead marks every notification in the caller's list read.
func (e *Engine) MarkNotificationsRead(actor Identity) (*models.User, error) {
	unlock := e.lockUser(actor.ID)
	defer unlock()

	user, err := e.store.User(actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errNotFound("user not found")
	}
	for i := range user.Notifications {
		user.Notifications[i].Read = true
	}
	if err := e.store.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
