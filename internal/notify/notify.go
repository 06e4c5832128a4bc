// Package notify emails stock alerts. Every newly raised high-severity
// alert goes out immediately; a daily digest summarizes everything that
// fired during the day.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/mworx/stockroom/internal/config"
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/redissvc"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	smtpCfg config.SMTPConfig

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func SetSMTPConfig(cfg config.SMTPConfig) {
	smtpCfg = cfg
}

// DailyAlertLogKey is the redis list collecting the day's alert events.
const DailyAlertLogKey = "stock:alertlog:daily"

type alertLogEntry struct {
	ItemName string    `json:"item_name"`
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Quantity int       `json:"quantity"`
	Time     time.Time `json:"time"`
}

// NotifyNewAlerts records every newly raised alert and emails the
// high-severity ones. Alerts carried over from the previous derivation are
// expected to be filtered out by the caller.
func NotifyNewAlerts(raised []models.InventoryAlert) {
	for _, a := range raised {
		logAlertEvent(a)
		if a.Severity == models.SeverityHigh {
			sendAlertEmail(a)
		}
	}
}

func logAlertEvent(a models.InventoryAlert) {
	if rdb == nil {
		return
	}
	entry := alertLogEntry{
		ItemName: a.ItemName,
		Type:     a.Type,
		Severity: a.Severity,
		Quantity: a.CurrentQuantity,
		Time:     a.CreatedAt,
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyAlertLogKey, data).Err()
}

func sendAlertEmail(a models.InventoryAlert) {
	if smtpCfg.Server == "" {
		return
	}
	subject := fmt.Sprintf("⚠️ STOCK ALERT: %s", a.ItemName)
	body := fmt.Sprintf("Item: %s\nAlert: %s\nQuantity: %d (reorder point %d)\nTime: %s",
		a.ItemName, a.Message, a.CurrentQuantity, a.ReorderPoint, a.CreatedAt.Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		smtpCfg.From, smtpCfg.To, subject, body)

	go func() {
		if err := smtp.SendMail(smtpAddr(), smtpAuth(), smtpCfg.From, []string{smtpCfg.To}, []byte(msg)); err != nil {
			log.Error().Err(err).Str("item", a.ItemName).Msg("failed to send alert email")
		}
	}()
}

func smtpAddr() string {
	return fmt.Sprintf("%s:%s", smtpCfg.Server, smtpCfg.Port)
}

func smtpAuth() smtp.Auth {
	if smtpCfg.AuthDisabled {
		return nil
	}
	return smtp.PlainAuth("", smtpCfg.User, smtpCfg.Password, smtpCfg.Server)
}

// StartDailyStockSummary emails the digest at the end of each day.
func StartDailyStockSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyStockSummary()
	}
}

func SendDailyStockSummary() {
	if rdb == nil || smtpCfg.Server == "" {
		return
	}
	entries, err := rdb.LRange(ctx, DailyAlertLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyAlertLogKey).Err() // clear after reading

	var events []alertLogEntry
	typeCounts := make(map[string]int)
	for _, item := range entries {
		var e alertLogEntry
		if err := json.Unmarshal([]byte(item), &e); err == nil {
			events = append(events, e)
			typeCounts[e.Type]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>📊 Daily Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Alerts raised today: <strong>%d</strong></p>", len(events)))

	sb.WriteString("<h3>By Type</h3><ul>")
	for kind, count := range typeCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", kind, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> %s/%s (qty %d) at %s</li>",
			e.ItemName, e.Type, e.Severity, e.Quantity, e.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + smtpCfg.From,
		"To: " + smtpCfg.To,
		"Subject: 📊 Daily Stock Report",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		sb.String(),
	}, "\r\n")

	go func() {
		if err := smtp.SendMail(smtpAddr(), smtpAuth(), smtpCfg.From, []string{smtpCfg.To}, []byte(msg)); err != nil {
			log.Error().Err(err).Msg("failed to send daily stock summary")
		} else {
			log.Info().Msg("📬 daily stock summary sent")
		}
	}()
}
