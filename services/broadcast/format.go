package broadcast

import (
	"fmt"

	"github.com/M-S-KHAN/hadith-inc/services/hadith"
)

// Format renders the daily message in Telegram HTML. Field validation is the
// client's job; this assumes a complete hadith.
func Format(h *hadith.Hadith) string {
	msg := "<b>🕌 Salaam, from Hadith Inc.</b>\n\n"
	msg += "<b>📜 Hadith of the Day:</b>\n\n"
	msg += fmt.Sprintf("<i>%s</i>\n\n", h.English)
	msg += fmt.Sprintf("<b>📖 Urdu Translation:</b>\n\n %s\n\n", h.Urdu)
	msg += fmt.Sprintf("<b>🗣 Narrated by:</b> %s\n", h.Narrator)
	msg += fmt.Sprintf("<b>🔍 Reference:</b> %s, Hadith No. %s\n", h.BookName, h.Number)
	msg += fmt.Sprintf("<b>📚 Chapter:</b> %s (Vol. %s)\n\n", h.Chapter, h.Volume)
	msg += "<b>If you love this bot, remember me in your prayers. JazakAllah Khair!</b>\n\n"
	msg += "📷 <a href='https://instagram.com/hadith.inc'>Follow us on Instagram</a>\n"

	return msg
}
