// Package telegram is the chat transport frontend: a thin adapter that
// receives tenant actions (file uploads, query text) over long polling
// and routes them through the storage gateway.  The chat id is the
// tenant identifier; no logic beyond routing, temp-file ownership and
// response rendering lives here.
package telegram

import (
	"fmt"
	"io"
	"net/http"
	"os"

	u "github.com/araddon/gou"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Phaust94/sqlite-interface/backends/sqlite"
	"github.com/Phaust94/sqlite-interface/ingest"
	"github.com/Phaust94/sqlite-interface/models"
	"github.com/Phaust94/sqlite-interface/render"
	"github.com/Phaust94/sqlite-interface/version"
)

// Server is the frontend runner: owns the bot session and the
// stop channel, one update handled at a time.
type Server struct {
	conf *models.Config
	bot  *tgbotapi.BotAPI
	stop chan bool
}

func NewServer(conf *models.Config) (*Server, error) {
	bot, err := tgbotapi.NewBotAPI(conf.ApiKey)
	if err != nil {
		return nil, err
	}
	return &Server{conf: conf, bot: bot, stop: make(chan bool)}, nil
}

// Run is a blocking runner, polls for updates until Shutdown.
func (m *Server) Run() {
	ucfg := tgbotapi.NewUpdate(0)
	ucfg.Timeout = 60
	updates := m.bot.GetUpdatesChan(ucfg)
	u.Infof("telegram frontend running as @%s", m.bot.Self.UserName)
	for {
		select {
		case <-m.stop:
			m.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			m.handle(update)
		}
	}
}

func (m *Server) Shutdown() {
	close(m.stop)
}

// handle one tenant action.  Every action ends in exactly one response:
// data, an acknowledgment, or a readable error string.
func (m *Server) handle(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID
	tenant := fmt.Sprintf("%d", chatID)

	var err error
	switch {
	case msg.IsCommand() && msg.Command() == "version":
		m.reply(chatID, fmt.Sprintf("SQLite interface bot version %s", version.Version))
		return
	case msg.Document != nil:
		if err = m.handleUpload(tenant, msg.Document); err == nil {
			m.reply(chatID, "Uploaded successfully")
			return
		}
	case msg.Text != "":
		if err = m.handleQuery(chatID, tenant, msg.Text); err == nil {
			return
		}
	default:
		return
	}

	u.Errorf("error in chat %d: %v", chatID, err)
	m.reply(chatID, fmt.Sprintf("Error in chat %d: %v", chatID, err))
}

// handleUpload download the document into a temp file we own for the
// scope of this action (removed on every exit path), parse it by its
// declared filename, append into the tenant's table.
func (m *Server) handleUpload(tenant string, doc *tgbotapi.Document) error {

	fileUrl, err := m.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "upload-")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err = download(fileUrl, tmp); err != nil {
		return err
	}
	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}

	ds, err := ingest.Parse(tmp, doc.FileName)
	if err != nil {
		return err
	}

	gw, err := sqlite.Open(m.conf.DbLocation, m.conf.Salt)
	if err != nil {
		return err
	}
	defer gw.Close()
	return gw.Ingest(ds, tenant)
}

// handleQuery run tenant query text scoped to their table and send the
// rendered result back.  Faults propagate to handle() so the tenant
// still gets an error message.
func (m *Server) handleQuery(chatID int64, tenant, text string) error {

	gw, err := sqlite.Open(m.conf.DbLocation, m.conf.Salt)
	if err != nil {
		return err
	}
	defer gw.Close()

	ds, err := gw.Query(sqlite.QueryRequest{
		Text:         text,
		TenantID:     tenant,
		RaiseOnError: true,
	})
	if err != nil {
		return err
	}
	if ds == nil {
		m.reply(chatID, "no rows")
		return nil
	}

	img, err := render.PNG(ds)
	if err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "table.png", Bytes: img})
	_, err = m.bot.Send(photo)
	return err
}

func (m *Server) reply(chatID int64, text string) {
	if _, err := m.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		u.Warnf("could not reply to chat %d: %v", chatID, err)
	}
}

func download(fileUrl string, w io.Writer) error {
	resp, err := http.Get(fileUrl)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("file download failed: %s", resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}
