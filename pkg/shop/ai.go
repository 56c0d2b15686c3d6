package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jman2424/tariq-hala-bot/pkg/session"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = openai.GPT4oMini

// historyLimit caps how many past exchanges are replayed into the completion
// request.
const historyLimit = 5

const assistPrompt = `You are a friendly customer assistant for Tariq Halal Meats, a UK halal meat retailer.
Answer questions using ONLY the product catalog and store information below.
Keep answers short and WhatsApp-friendly. If you don't know the answer, ask the
customer to call 0208 908 9440.`

// Assist answers questions the Resolver could not, by sending the catalog and
// store information plus recent conversation history to a chat-completion
// model. Failures are returned as errors; the caller owns the degrade reply.
type Assist struct {
	api     *openai.Client
	model   string
	context string
}

func NewAssist(token, model string, catalog *Catalog, info *StoreInfo) *Assist {
	if model == "" {
		model = defaultModel
	}

	return &Assist{
		api:     openai.NewClient(token),
		model:   model,
		context: assistPrompt + "\n\n" + formatCatalog(catalog) + "\n" + formatStoreInfo(info),
	}
}

// Answer sends one completion request with the current question as the final
// user turn.
func (a *Assist) Answer(ctx context.Context, question string, history []session.Turn) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: a.context},
	}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, t := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: t.User},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: t.Bot},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question})

	resp, err := a.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func formatCatalog(catalog *Catalog) string {
	var b strings.Builder
	b.WriteString("PRODUCT CATALOG:\n")
	for _, cat := range catalog.Categories() {
		fmt.Fprintf(&b, "\n%s\n", cat.Name)
		for _, e := range cat.Entries {
			fmt.Fprintf(&b, "- %s: %s\n", e.Name, e.Price)
		}
	}
	return b.String()
}

func formatStoreInfo(info *StoreInfo) string {
	var b strings.Builder
	b.WriteString("STORE INFORMATION:\n")
	fmt.Fprintf(&b, "\nDelivery policy:\n%s\n", info.DeliveryPolicy)
	fmt.Fprintf(&b, "\nDelivery schedule:\n%s\n", info.DeliverySchedule)
	fmt.Fprintf(&b, "\nOpening hours: %s\n", info.OpeningHours)
	fmt.Fprintf(&b, "\nContact: %s\n", info.Contact)
	fmt.Fprintf(&b, "\nCustomer service:\n%s\n", info.CustomerService)
	fmt.Fprintf(&b, "\nCertification: %s\n", info.HalalCertification)
	b.WriteString("\nBranches:\n")
	for _, br := range info.Branches {
		fmt.Fprintf(&b, "- %s: %s, %s | %s\n", br.Name, br.Address, br.Postcode, br.Phone)
	}
	return b.String()
}
