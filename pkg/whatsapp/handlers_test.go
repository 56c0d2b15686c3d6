package whatsapp

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jman2424/tariq-hala-bot/pkg/order"
	"github.com/jman2424/tariq-hala-bot/pkg/services"
	"github.com/jman2424/tariq-hala-bot/pkg/session"
	"github.com/jman2424/tariq-hala-bot/pkg/shop"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/embedlog"
)

const testAuthToken = "test-auth-token"

// failingLLM simulates an unavailable completion service.
type failingLLM struct{}

func (failingLLM) Answer(ctx context.Context, question string, history []session.Turn) (string, error) {
	return "", errors.New("upstream timeout")
}

// echoLLM replies with a recognizable string so tests can tell the AI path
// was taken.
type echoLLM struct{}

func (echoLLM) Answer(ctx context.Context, question string, history []session.Turn) (string, error) {
	return "AI: " + question, nil
}

func newTestBot(t *testing.T, authToken string, llm services.LLM) *Bot {
	t.Helper()

	logger := embedlog.NewLogger("console", true)
	resolver := shop.NewResolver(shop.DefaultCatalog(), shop.DefaultStoreInfo())
	if llm == nil {
		llm = services.NewMockLLM(logger)
	}

	return New(Config{AuthToken: authToken},
		resolver,
		order.NewFlow(resolver),
		session.NewMemory(time.Hour),
		llm,
		logger,
	)
}

func postForm(t *testing.T, bot *Bot, form url.Values, sign bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if sign {
		req.Header.Set("X-Twilio-Signature", twilioSign(t, "http://example.com/whatsapp", form))
	}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, bot.HandleMessage(c))
	return rec
}

// twilioSign reproduces the Twilio webhook signature: HMAC-SHA1 over the URL
// concatenated with the sorted form keys and values.
func twilioSign(t *testing.T, url string, form url.Values) string {
	t.Helper()

	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	base := url
	for _, k := range keys {
		base += k + form.Get(k)
	}

	mac := hmac.New(sha1.New, []byte(testAuthToken))
	mac.Write([]byte(base))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestHandleMessageRejectsBadSignature(t *testing.T) {
	bot := newTestBot(t, testAuthToken, nil)

	form := url.Values{"Body": {"delivery"}, "From": {"whatsapp:+447700900000"}}
	rec := postForm(t, bot, form, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// content doesn't matter, signature always wins
	form = url.Values{"Body": {"hello"}, "From": {"whatsapp:+447700900000"}}
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("X-Twilio-Signature", "bogus")
	rec = httptest.NewRecorder()
	require.NoError(t, bot.HandleMessage(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleMessageAcceptsValidSignature(t *testing.T) {
	bot := newTestBot(t, testAuthToken, nil)

	form := url.Values{"Body": {"delivery"}, "From": {"whatsapp:+447700900000"}}
	rec := postForm(t, bot, form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mainland UK delivery 7 days a week.")
}

func TestHandleMessageEmptyBody(t *testing.T) {
	bot := newTestBot(t, "", nil)

	form := url.Values{"Body": {"   "}, "From": {"whatsapp:+447700900000"}}
	rec := postForm(t, bot, form, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMessageOrderFlowEndToEnd(t *testing.T) {
	bot := newTestBot(t, "", nil)
	sender := "whatsapp:+447700900000"

	send := func(body string) string {
		form := url.Values{"Body": {body}, "From": {sender}}
		rec := postForm(t, bot, form, false)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	assert.Contains(t, send("add beef mince"), "Added Beef Mince")
	assert.Contains(t, send("show cart"), "Beef Mince")
	assert.Contains(t, send("checkout"), "name")
	assert.Contains(t, send("Aisha Khan"), "address")
	assert.Contains(t, send("12 High Street"), "phone")
	assert.Contains(t, send("07700 900123"), "checkout")
	assert.Contains(t, send("checkout"), "Order confirmed")

	// order state is gone, cart starts over
	assert.Contains(t, send("show cart"), "empty")
}

func TestHandleMessageAIFailureDegradesToApology(t *testing.T) {
	bot := newTestBot(t, "", failingLLM{})

	form := url.Values{"Body": {"do you sell gift cards?"}, "From": {"whatsapp:+447700900000"}}
	rec := postForm(t, bot, form, false)
	require.Equal(t, http.StatusOK, rec.Code, "AI failure must never become a 5xx")
	assert.Contains(t, rec.Body.String(), "0208 908 9440")
}

func TestHandleMessageAIReceivesHistory(t *testing.T) {
	bot := newTestBot(t, "", echoLLM{})
	sender := "whatsapp:+447700900000"

	form := url.Values{"Body": {"an unanswerable question"}, "From": {sender}}
	rec := postForm(t, bot, form, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI: an unanswerable question")

	sess, err := bot.sessions.Get(context.Background(), sender)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Len(t, sess.History, 1)
	assert.Equal(t, "an unanswerable question", sess.History[0].User)
}

func TestHandleStatusCallback(t *testing.T) {
	bot := newTestBot(t, "", nil)

	form := url.Values{"MessageSid": {"SM123"}, "MessageStatus": {"delivered"}}
	req := httptest.NewRequest(http.MethodPost, "/whatsapp/status", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, bot.HandleStatusCallback(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
