package query

import (
	"fmt"
	"strings"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/store"
)

// Reply text is Hinglish; these strings are what end users see
// verbatim, so their structure is fixed.
const (
	msgNotFound    = "Maaf kijiye, karyakram number %d nahi mila."
	msgBadDate     = "Maaf kijiye, tareekh samajh nahi aayi. Kripya DD/MM/YYYY mein likhein."
	msgNoToday     = "Aaj koi karyakram nahi hai."
	msgNoUpcoming  = "Abhi koi aane wala karyakram nahi hai."
	msgNoneOnDate  = "%s ko koi karyakram nahi hai."
	msgNoResults   = "\"%s\" se juda koi karyakram nahi mila."
	msgNoMatch     = "Maaf kijiye, main samajh nahi paya. Aap puchh sakte hain: 'aaj ke karyakram', 'aane wale karyakram', ya karyakram number."
	msgGenericErr  = "Maaf kijiye, kuch gadbad ho gayi. Kripya thodi der baad koshish karein."
	headerToday    = "📋 *Aaj ke karyakram:*"
	headerUpcoming = "📋 *Aane wale karyakram:*"
	headerOnDate   = "📋 *%s ke karyakram:*"
	headerSearch   = "🔍 *Khoj ke natije:*"
	footerViewAll  = "Sabhi karyakram dekhne ke liye: %s"
)

// FormatEvent renders the canonical multi-line block for one event.
func FormatEvent(e model.Event) string {
	var b strings.Builder

	header := fmt.Sprintf("🎉 *%d. %s*", e.EventIndex, e.Title)
	if e.Description != "" {
		header += " — " + e.Description
	}
	b.WriteString(header)

	b.WriteString(fmt.Sprintf("\n📅 %s", e.Date.Format(store.EventDateLayout)))
	if e.Time != "" {
		b.WriteString(fmt.Sprintf(" | 🕒 %s", e.Time))
	}
	if e.Address != "" {
		b.WriteString(fmt.Sprintf("\n📍 %s", e.Address))
	}
	if e.Organizer != "" {
		b.WriteString(fmt.Sprintf("\n👤 Aayojak: %s", e.Organizer))
	}
	if e.ContactPhone != "" {
		b.WriteString(fmt.Sprintf("\n📞 Sampark: %s", e.ContactPhone))
	}
	if e.MediaURL != "" {
		b.WriteString(fmt.Sprintf("\n🔗 %s", e.MediaURL))
	}

	return b.String()
}

// formatList joins event blocks under a header with blank-line
// separators, appending the "view all" footer when configured.
func (e *Engine) formatList(header string, events []model.Event) string {
	blocks := make([]string, 0, len(events)+1)
	blocks = append(blocks, header)
	for _, ev := range events {
		blocks = append(blocks, FormatEvent(ev))
	}
	if e.DashboardURL != "" {
		blocks = append(blocks, fmt.Sprintf(footerViewAll, e.DashboardURL))
	}
	return strings.Join(blocks, "\n\n")
}
