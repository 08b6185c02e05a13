package application

import (
	"time"

	"github.com/M-S-KHAN/hadith-inc/models/constants"
	"github.com/M-S-KHAN/hadith-inc/models/entities"
	subscriberRepo "github.com/M-S-KHAN/hadith-inc/repositories/subscribers"
	"github.com/M-S-KHAN/hadith-inc/services/broadcast"
	"github.com/M-S-KHAN/hadith-inc/services/hadith"
	"github.com/M-S-KHAN/hadith-inc/services/health"
	"github.com/M-S-KHAN/hadith-inc/services/telegram"
	"github.com/M-S-KHAN/hadith-inc/utils/databases"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db, errDB := databases.New(viper.GetString(constants.SqliteURL))
	if errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Subscriber{})
	if errMigration != nil {
		return nil, errMigration
	}

	location, errLocation := time.LoadLocation(viper.GetString(constants.Timezone))
	if errLocation != nil {
		return nil, errLocation
	}

	scheduler, errScheduler := gocron.NewScheduler(gocron.WithLocation(location))
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	subRepo := subscriberRepo.New(db)

	// Services
	hadithService, errHadith := hadith.New(viper.GetString(constants.HadithAPIKey))
	if errHadith != nil {
		return nil, errHadith
	}

	telegramService, errTg := telegram.New(scheduler, viper.GetString(constants.TelegramBotToken), subRepo)
	if errTg != nil {
		return nil, errTg
	}

	broadcastService, errBroadcast := broadcast.New(scheduler, hadithService, subRepo, telegramService)
	if errBroadcast != nil {
		return nil, errBroadcast
	}

	broadcastService.RegisterObserver(telegramService)

	if _, errHealth := health.New(scheduler, db.IsConnected); errHealth != nil {
		return nil, errHealth
	}

	return &Impl{
		scheduler:        scheduler,
		telegramService:  telegramService,
		broadcastService: broadcastService,
		db:               db,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()

	go func() {
		if err := app.telegramService.ListenAndDispatch(); err != nil {
			log.Error().Err(err).Msg("Telegram listener stopped")
		}
	}()

	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
