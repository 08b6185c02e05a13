package telegram

import (
	"errors"

	subscriberRepo "github.com/M-S-KHAN/hadith-inc/repositories/subscribers"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/patrickmn/go-cache"
)

type MessageType int

const (
	MessageTypeUnknown           MessageType = -1
	MessageTypeSubscribed        MessageType = 1
	MessageTypeAlreadySubscribed MessageType = 2
	MessageTypeUnsubscribed      MessageType = 3
	MessageTypeNotSubscribed     MessageType = 4
	MessageTypeHelp              MessageType = 5
	MessageTypeNoHadithYet       MessageType = 6
)

const lastHadithCacheKey = "lastHadithCacheKey"

var (
	ErrTokenIsMissing         = errors.New("telegram token is missing")
	ErrBotNotInitialized      = errors.New("telegram bot is not ready yet")
	ErrFailedToStartListening = errors.New("telegram bot can't start to listen command")
)

type Service interface {
	ListenAndDispatch() error
	Send(chatID int64, text string) error
}

type Impl struct {
	bot            *gotgbot.Bot
	updater        *ext.Updater
	subscriberRepo subscriberRepo.Repository
	cache          *cache.Cache
	adminChatID    int64
}
