package store

import (
	"errors"

	"civicboard/internal/models"

	"gorm.io/gorm"
)

// Store is the gorm-backed persistence collaborator for the forum engine.
// Lookup methods return (nil, nil) when the record does not exist.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an initialized gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Category(id string) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &c, nil
}

func (s *Store) Categories() ([]models.Category, error) {
	var cs []models.Category
	if err := s.db.Order("name").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Store) SaveCategory(c *models.Category) error {
	return s.db.Save(c).Error
}

func (s *Store) Topic(id string) (*models.Topic, error) {
	var t models.Topic
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &t, nil
}

func (s *Store) Topics() ([]models.Topic, error) {
	var ts []models.Topic
	if err := s.db.Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *Store) TopicsByCategory(categoryID string) ([]models.Topic, error) {
	var ts []models.Topic
	if err := s.db.Where("category_id = ?", categoryID).Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *Store) SaveTopic(t *models.Topic) error {
	return s.db.Save(t).Error
}

func (s *Store) DeleteTopic(id string) error {
	return s.db.Delete(&models.Topic{}, "id = ?", id).Error
}

func (s *Store) Reply(id string) (*models.Reply, error) {
	var r models.Reply
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &r, nil
}

func (s *Store) RepliesByTopic(topicID string) ([]models.Reply, error) {
	var rs []models.Reply
	if err := s.db.Where("topic_id = ?", topicID).Order("created_at").Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *Store) SaveReply(r *models.Reply) error {
	return s.db.Save(r).Error
}

func (s *Store) DeleteRepliesByTopic(topicID string) error {
	return s.db.Delete(&models.Reply{}, "topic_id = ?", topicID).Error
}

func (s *Store) User(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &u, nil
}

// UsersFollowing scans users' follow lists for the given topic. Follow sets
// live in a JSON column, so this is a full scan; follower counts on a
// community board stay small enough for that.
func (s *Store) UsersFollowing(topicID string) ([]string, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	var ids []string
	for i := range users {
		if users[i].Follows(topicID) {
			ids = append(ids, users[i].ID)
		}
	}
	return ids, nil
}

func (s *Store) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *Store) Report(id string) (*models.Report, error) {
	var r models.Report
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &r, nil
}

func (s *Store) Reports() ([]models.Report, error) {
	var rs []models.Report
	if err := s.db.Order("created_at DESC").Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *Store) SaveReport(r *models.Report) error {
	return s.db.Save(r).Error
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
