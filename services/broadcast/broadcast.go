package broadcast

import (
	"math/rand/v2"

	"github.com/M-S-KHAN/hadith-inc/models/constants"
	"github.com/M-S-KHAN/hadith-inc/pkg/observer"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, fetcher Fetcher, registry Registry, sender Sender) (*Impl, error) {
	service := &Impl{
		fetcher:   fetcher,
		registry:  registry,
		sender:    sender,
		books:     constants.GetBooks(),
		observers: map[observer.Observer]struct{}{},
	}

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.BroadcastCronTab), true),
		gocron.NewTask(func() { service.run() }),
		gocron.WithName("Send daily hadith"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

func (service *Impl) RegisterObserver(o observer.Observer) {
	service.observers[o] = struct{}{}
}

func (service *Impl) notify(e observer.Event) {
	for o := range service.observers {
		o.OnNotify(e)
	}
}

func (service *Impl) run() {
	book := service.books[rand.IntN(len(service.books))]
	number := rand.IntN(book.MaxNumber) + 1

	h, err := service.fetcher.Fetch(book, number)
	if err != nil {
		log.Error().Err(err).Str(constants.LogBook, book.Slug).Int(constants.LogHadithNumber, number).Msg("Failed to fetch hadith, skipping this run")
		return
	}

	message := Format(h)

	subs, errSubs := service.registry.FetchAll()
	if errSubs != nil {
		log.Error().Err(errSubs).Msg("Failed to fetch subscribers, skipping this run")
		return
	}

	for _, sub := range subs {
		log.Info().Int64(constants.LogChatID, sub.ChatID).Msg("send daily hadith")
		if errSend := service.sender.Send(sub.ChatID, message); errSend != nil {
			log.Error().Err(errSend).Int64(constants.LogChatID, sub.ChatID).Msg("Failed to send daily hadith")
		}
	}

	service.notify(observer.NewBroadcastEvent(message))
}
