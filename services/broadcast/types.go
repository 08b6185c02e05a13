package broadcast

import (
	"github.com/M-S-KHAN/hadith-inc/models/constants"
	"github.com/M-S-KHAN/hadith-inc/models/entities"
	"github.com/M-S-KHAN/hadith-inc/pkg/observer"
	"github.com/M-S-KHAN/hadith-inc/services/hadith"
)

type Fetcher interface {
	Fetch(book constants.Book, number int) (*hadith.Hadith, error)
}

type Registry interface {
	FetchAll() ([]entities.Subscriber, error)
}

type Sender interface {
	Send(chatID int64, text string) error
}

type Service interface {
	RegisterObserver(observer.Observer)
}

type Impl struct {
	fetcher   Fetcher
	registry  Registry
	sender    Sender
	books     []constants.Book
	observers map[observer.Observer]struct{}
}
