package constants

import "github.com/rs/zerolog"

const (
	ExternalName   = "Hadith Inc."
	InternalName   = "hadith-inc"
	Version        = "1.0.0"
	ConfigFileName = ".env"

	// Telegram bot API token.
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	//nolint:gosec // False positive.
	// API key for hadithapi.com.
	HadithAPIKey = "HADITH_API_KEY"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// IANA zone the cron tabs are evaluated in.
	Timezone = "TIMEZONE"

	// Cron tab to the daily hadith broadcast.
	BroadcastCronTab = "BROADCAST_CRON_TAB"

	// Cron tab to the daily subscriber report sent to the admin.
	AdminReportCronTab = "ADMIN_REPORT_CRON_TAB"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// Chat that receives admin notifications; 0 disables them.
	AdminChatID = "ADMIN_CHAT_ID"

	defaultTelegramBotToken   = ""
	defaultHadithAPIKey       = ""
	defaultSqliteURL          = "subscribers.db"
	defaultTimezone           = "Asia/Karachi"
	defaultBroadcastCronTab   = "30 7 * * *"
	defaultAdminReportCronTab = "0 14 * * *"
	defaultHealthCronTab      = "* * * * *"
	defaultAdminChatID        = int64(0)
	defaultLogLevel           = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		TelegramBotToken:   defaultTelegramBotToken,
		HadithAPIKey:       defaultHadithAPIKey,
		SqliteURL:          defaultSqliteURL,
		Timezone:           defaultTimezone,
		BroadcastCronTab:   defaultBroadcastCronTab,
		AdminReportCronTab: defaultAdminReportCronTab,
		HealthCronTab:      defaultHealthCronTab,
		AdminChatID:        defaultAdminChatID,
		LogLevel:           defaultLogLevel.String(),
	}
}
