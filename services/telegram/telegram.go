package telegram

import (
	"fmt"
	"time"

	"github.com/M-S-KHAN/hadith-inc/models/constants"
	"github.com/M-S-KHAN/hadith-inc/models/entities"
	"github.com/M-S-KHAN/hadith-inc/pkg/observer"
	subscriberRepo "github.com/M-S-KHAN/hadith-inc/repositories/subscribers"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
	"github.com/dustin/go-humanize"
	"github.com/go-co-op/gocron/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New(scheduler gocron.Scheduler, token string, subscriberRepo subscriberRepo.Repository) (*Impl, error) {

	if token == "" {
		return nil, ErrTokenIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return nil, ErrBotNotInitialized
	}

	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *gotgbot.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Warn().Err(err).Msg("an error occurred while handling update")
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})

	service := Impl{
		bot:            b,
		subscriberRepo: subscriberRepo,
		cache:          cache.New(25*time.Hour, 2*time.Hour),
		adminChatID:    viper.GetInt64(constants.AdminChatID),
	}
	dispatcher.AddHandler(handlers.NewCommand("start", service.startCmd))
	dispatcher.AddHandler(handlers.NewCommand("stop", service.stopCmd))
	dispatcher.AddHandler(handlers.NewCommand("help", service.helpCmd))
	dispatcher.AddHandler(handlers.NewCommand("about", service.aboutCmd))
	dispatcher.AddHandler(handlers.NewCommand("hadith", service.hadithCmd))
	dispatcher.AddHandler(handlers.NewCommand("", service.unknownCmd))

	service.updater = ext.NewUpdater(dispatcher, nil)

	_, errJob := scheduler.NewJob(
		gocron.CronJob(viper.GetString(constants.AdminReportCronTab), true),
		gocron.NewTask(func() { service.dailyAdminReport() }),
		gocron.WithName("Send daily report to admin"),
	)
	if errJob != nil {
		return nil, errJob
	}

	return &service, nil
}

func (service *Impl) ListenAndDispatch() error {

	err := service.updater.StartPolling(service.bot, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &gotgbot.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &gotgbot.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return ErrFailedToStartListening
	}

	service.updater.Idle()

	return nil
}

// Send delivers one message to one chat in Telegram HTML mode. The daily
// broadcast goes through here.
func (service *Impl) Send(chatID int64, text string) error {
	_, err := service.bot.SendMessage(chatID, text, &gotgbot.SendMessageOpts{ParseMode: "HTML"})
	return err
}

// OnNotify keeps the last broadcast around so /hadith can replay it.
func (service *Impl) OnNotify(e observer.Event) {
	if e.E == observer.BroadcastEvent {
		service.cache.SetDefault(lastHadithCacheKey, e.Message)
	}
}

func (service *Impl) startCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "start").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	outcome, err := service.subscriberRepo.Save(entities.Subscriber{ChatID: ctx.EffectiveChat.Id, Name: ctx.EffectiveChat.Username})
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("error on subscribe")
		service.bot.SendMessage(ctx.EffectiveChat.Id, getGenericErrorMessage(), nil)
		return nil
	}

	if outcome == subscriberRepo.AlreadyPresent {
		service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeAlreadySubscribed), nil)
		return nil
	}

	service.notifyAdminOnNewSubscriber(ctx.EffectiveChat.Id)
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeSubscribed), nil)
	return nil
}

func (service *Impl) stopCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "stop").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	outcome, err := service.subscriberRepo.Delete(ctx.EffectiveChat.Id)
	if err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("error on unsubscribe")
		service.bot.SendMessage(ctx.EffectiveChat.Id, getGenericErrorMessage(), nil)
		return nil
	}

	if outcome == subscriberRepo.NotPresent {
		service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeNotSubscribed), nil)
		return nil
	}

	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeUnsubscribed), nil)
	return nil
}

func (service *Impl) helpCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "help").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeHelp), nil)
	return nil
}

func (service *Impl) aboutCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "about").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getAboutMessage(), &gotgbot.SendMessageOpts{ParseMode: "HTML"})
	return nil
}

func (service *Impl) hadithCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "hadith").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")

	if x, found := service.cache.Get(lastHadithCacheKey); found {
		service.bot.SendMessage(ctx.EffectiveChat.Id, x.(string), &gotgbot.SendMessageOpts{ParseMode: "HTML"})
	} else {
		service.bot.SendMessage(ctx.EffectiveChat.Id, getMessageFromMessageType(MessageTypeNoHadithYet), nil)
	}
	return nil
}

func (service *Impl) unknownCmd(b *gotgbot.Bot, ctx *ext.Context) error {
	log.Info().Str(constants.LogCommand, "unknown").Str("username", ctx.EffectiveChat.Username).Int64(constants.LogChatID, ctx.EffectiveChat.Id).Msg("command received")
	service.bot.SendMessage(ctx.EffectiveChat.Id, getGenericErrorMessage(), nil)
	return nil
}

func (service *Impl) notifyAdminOnNewSubscriber(chatID int64) {
	if service.adminChatID == 0 || chatID == service.adminChatID {
		return
	}

	msg := "🆕 <b>New subscriber!</b> 🎉\n\n"
	msg += fmt.Sprintf("👤 <b>Chat ID:</b> <code>%d</code>\n", chatID)
	msg += fmt.Sprintf("📅 <b>Date:</b> <code>%s</code>\n", time.Now().Format("2006-01-02 15:04:05"))

	service.bot.SendMessage(service.adminChatID, msg, &gotgbot.SendMessageOpts{ParseMode: "HTML"})
}

func (service *Impl) dailyAdminReport() {
	if service.adminChatID == 0 {
		return
	}

	subs, err := service.subscriberRepo.FetchAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch subscribers for admin report")
		return
	}

	msg := "📢 <b>Daily subscriber report</b> 📊\n\n"
	msg += fmt.Sprintf("👥 <b>Total subscribers:</b> <code>%s</code>\n", humanize.Comma(int64(len(subs))))

	service.bot.SendMessage(service.adminChatID, msg, &gotgbot.SendMessageOpts{ParseMode: "HTML"})
}

func getGenericErrorMessage() string {

	msg := "😔 Oops! Something went wrong.\n\n"
	msg += "I couldn't complete your request. Wait a moment and try again, "
	msg += "or type /help for the list of commands."

	return msg
}

func getAboutMessage() string {

	msg := "<b>About This Service:</b>\n"
	msg += "This bot provides daily Hadiths from renowned sources: Sahih Bukhari, Sahih Muslim "
	msg += "and Al-Tirmidhi. These texts are essential in understanding the sayings and practices of the "
	msg += "Prophet Muhammad (PBUH).\n\n"
	msg += "<b>Creator:</b>\n"
	msg += "Muhammad Sajawal Khan from Pakistan 🇵🇰 (Contact Me: sajawalkhan111@gmail.com)\n"
	msg += "Please remember me in your prayers. 🤲\n\n"
	msg += "The Hadiths are carefully selected and provided from respected collections, ensuring authenticity "
	msg += "and relevance.\n\n"
	msg += "Thank you for using this service, and may it benefit you greatly. Aameen!"

	return msg
}

func getMessageFromMessageType(messageType MessageType) string {
	switch messageType {
	case MessageTypeSubscribed:
		msg := "You have been subscribed to daily Hadith notifications by Hadith Inc.! 🕌\n"
		msg += "Use /help to learn more about the commands available.\n\n"
		msg += "Stay tuned and receive a daily Hadith automatically, InshaAllah! 🕋"

		return msg

	case MessageTypeAlreadySubscribed:
		return "You are already subscribed to Hadith Inc., MashaAllah 📚"

	case MessageTypeUnsubscribed:
		return "You have been unsubscribed from daily Hadith notifications. 😢"

	case MessageTypeNotSubscribed:
		return "You are not subscribed to Hadith Inc. yet. 😇"

	case MessageTypeHelp:
		msg := "Here's how you can use this bot:\n"
		msg += "/start - Subscribe to daily Hadith notifications\n"
		msg += "/help - Get help and command usage\n"
		msg += "/about - Learn more about this service and its creator\n"
		msg += "/hadith - Get the last Hadith of the Day again\n"
		msg += "/stop - Unsubscribe from daily Hadith notifications\n\n"
		msg += "Just stay tuned and receive a daily Hadith automatically, InshaAllah! 🕋"

		return msg

	case MessageTypeNoHadithYet:
		return "No Hadith has been broadcast yet today. Stay tuned, the next one is on its way, InshaAllah! 🕋"

	default:
		return getGenericErrorMessage()
	}
}
