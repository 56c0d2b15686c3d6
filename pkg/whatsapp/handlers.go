package whatsapp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/twilio/twilio-go/twiml"
)

// HandleMessage is the inbound webhook. Twilio POSTs form-encoded fields;
// Body and From are the ones consumed. The signature must validate before
// anything else happens.
func (b *Bot) HandleMessage(c echo.Context) error {
	ctx := c.Request().Context()

	if !b.validSignature(c) {
		errorsTotal.WithLabelValues("signature").Inc()
		b.logger.Print(ctx, "invalid twilio signature", "remote", c.RealIP())
		return c.String(http.StatusForbidden, "Unauthorized")
	}

	body := strings.TrimSpace(c.FormValue("Body"))
	sender := c.FormValue("From")
	if body == "" || sender == "" {
		errorsTotal.WithLabelValues("empty_body").Inc()
		return c.String(http.StatusBadRequest, "Empty message")
	}

	if b.debug {
		b.logger.Print(ctx, "received message", "sender", sender, "body", body)
	}

	reply, err := b.reply(ctx, sender, body)
	if err != nil {
		errorsTotal.WithLabelValues("session").Inc()
		b.logger.Error(ctx, "failed to process message", "err", err, "sender", sender)
		return c.String(http.StatusInternalServerError, "Server Error")
	}

	// One message with embedded newlines rather than one message per line.
	doc, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: reply}})
	if err != nil {
		errorsTotal.WithLabelValues("render").Inc()
		b.logger.Error(ctx, "failed to render twiml", "err", err)
		return c.String(http.StatusInternalServerError, "Server Error")
	}

	return c.Blob(http.StatusOK, "text/xml", []byte(doc))
}

// HandleStatusCallback receives delivery-status notifications for previously
// sent messages. Logged and acknowledged, nothing else.
func (b *Bot) HandleStatusCallback(c echo.Context) error {
	status := c.FormValue("MessageStatus")
	if status == "" {
		status = "unknown"
	}
	statusCallbacks.WithLabelValues(status).Inc()

	b.logger.Print(c.Request().Context(), "message status callback",
		"sid", c.FormValue("MessageSid"), "status", status, "to", c.FormValue("To"))
	return c.NoContent(http.StatusOK)
}

// validSignature checks the X-Twilio-Signature header against the raw
// request, per the Twilio webhook security scheme.
func (b *Bot) validSignature(c echo.Context) bool {
	if !b.validate {
		return true
	}

	req := c.Request()
	if err := req.ParseForm(); err != nil {
		return false
	}
	params := make(map[string]string, len(req.PostForm))
	for k, v := range req.PostForm {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	url := c.Scheme() + "://" + req.Host + req.RequestURI
	return b.validator.Validate(url, params, req.Header.Get("X-Twilio-Signature"))
}
