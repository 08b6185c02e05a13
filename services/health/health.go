package health

import (
	"github.com/M-S-KHAN/hadith-inc/models/constants"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Impl struct {
	isDBConnected func() bool
}

func New(scheduler gocron.Scheduler, isDBConnected func() bool) (*Impl, error) {
	service := Impl{isDBConnected: isDBConnected}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.HealthCronTab), true),
		gocron.NewTask(func() { service.echo() }),
		gocron.WithName("Check app running"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) echo() {
	log.Info().Bool("dbConnected", service.isDBConnected()).Msgf("Application is running")
}
