package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogBook          = "book"
	LogHadithNumber  = "hadithNumber"
	LogChatID        = "chatID"
	LogCommand       = "cmd"
	LogLevelFallback = zerolog.InfoLevel
)
