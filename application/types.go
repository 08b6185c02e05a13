package application

import (
	"github.com/M-S-KHAN/hadith-inc/services/broadcast"
	"github.com/M-S-KHAN/hadith-inc/services/telegram"
	"github.com/M-S-KHAN/hadith-inc/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler        gocron.Scheduler
	telegramService  telegram.Service
	broadcastService broadcast.Service
	db               databases.SqlConnection
}
