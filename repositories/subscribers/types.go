package subscribers

import (
	"sync"

	"github.com/M-S-KHAN/hadith-inc/models/entities"
	"github.com/M-S-KHAN/hadith-inc/utils/databases"
)

type SaveResult int

type DeleteResult int

const (
	Added          SaveResult = 1
	AlreadyPresent SaveResult = 2

	Removed    DeleteResult = 1
	NotPresent DeleteResult = 2
)

type Repository interface {
	Save(sub entities.Subscriber) (SaveResult, error)
	Delete(chatID int64) (DeleteResult, error)
	FetchAll() ([]entities.Subscriber, error)
}

type Impl struct {
	db databases.SqlConnection
	// serializes the check-then-insert in Save
	mu sync.Mutex
}
