package services

import (
	"context"
	"fmt"
	"strings"

	"globalpass/internal/catalog"
	"globalpass/internal/generation"
	"globalpass/internal/models"
	"globalpass/internal/providers"
	"globalpass/internal/structures"
)

const (
	IntentUnlimited = "unlimited"
	IntentCountry   = "country"
	IntentGeneric   = "generic"
)

const (
	// emptyRetrievalContext is sent to the generator instead of an empty
	// package block so the model can say "nothing found" rather than invent.
	emptyRetrievalContext = "No matching packages were found in the catalog for this request."

	apologyMessage = "Sorry, the shopping assistant is temporarily unavailable. Please try again in a moment."
)

// Intent is the classified category of a free-text question.
type Intent struct {
	Kind    string
	Country string
}

type intentRule struct {
	kind  string
	match func(question, countryHint string) (Intent, bool)
}

var unlimitedKeywords = []string{"unlimited", "无限"}

// countryKeywords maps each supported catalog country to the phrases users
// write for it. The catalog key, not the matched phrase, drives retrieval.
var countryKeywords = []struct {
	Country  string
	Keywords []string
}{
	{"Japan", []string{"japan", "日本"}},
	{"USA", []string{"usa", "america", "美国"}},
	{"Thailand", []string{"thailand", "泰国"}},
	{"South Korea", []string{"korea", "韩国"}},
	{"Singapore", []string{"singapore", "新加坡"}},
	{"China", []string{"china", "中国"}},
	{"Hong Kong", []string{"hong kong", "hongkong", "香港"}},
	{"Taiwan", []string{"taiwan", "台湾"}},
	{"France", []string{"france", "法国"}},
	{"United Kingdom", []string{"united kingdom", "英国"}},
}

// intentRules are evaluated in fixed priority order: unlimited beats country
// beats generic, and the first matching country keyword wins.
var intentRules = []intentRule{
	{IntentUnlimited, matchUnlimited},
	{IntentCountry, matchCountry},
	{IntentGeneric, matchGeneric},
}

func matchUnlimited(question, _ string) (Intent, bool) {
	q := strings.ToLower(question)
	for _, kw := range unlimitedKeywords {
		if strings.Contains(q, kw) {
			return Intent{Kind: IntentUnlimited}, true
		}
	}
	return Intent{}, false
}

func matchCountry(question, countryHint string) (Intent, bool) {
	if countryHint != "" {
		return Intent{Kind: IntentCountry, Country: countryHint}, true
	}
	q := strings.ToLower(question)
	for _, entry := range countryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				return Intent{Kind: IntentCountry, Country: entry.Country}, true
			}
		}
	}
	return Intent{}, false
}

func matchGeneric(_, _ string) (Intent, bool) {
	return Intent{Kind: IntentGeneric}, true
}

func classifyIntent(question, countryHint string) Intent {
	for _, rule := range intentRules {
		if intent, ok := rule.match(question, countryHint); ok {
			return intent
		}
	}
	return Intent{Kind: IntentGeneric}
}

type AssistantServiceInterface interface {
	// Ask plans a shortlist for the question and produces the assistant
	// turn. It never fails loudly: generation problems surface as an
	// apology answer with no packages attached.
	Ask(ctx context.Context, question, countryHint string) (*models.ChatTurn, []models.ESIMPackage)
}

type AssistantService struct {
	conf      *structures.Config
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	provider  catalog.ProviderInterface
	generator generation.TextGenerator
}

func NewAssistantService(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, provider catalog.ProviderInterface, generator generation.TextGenerator) AssistantServiceInterface {
	return &AssistantService{
		conf:      conf,
		logger:    logger,
		metrics:   metrics,
		provider:  provider,
		generator: generator,
	}
}

func (as *AssistantService) Ask(ctx context.Context, question, countryHint string) (*models.ChatTurn, []models.ESIMPackage) {
	intent := classifyIntent(question, countryHint)
	as.metrics.IncIntent(intent.Kind)

	ranked, err := as.plan(ctx, intent, question)
	if err != nil {
		as.logger.Errorf(providers.TypeApp, "Catalog unavailable for question: %s", err)
		return &models.ChatTurn{Role: models.RoleAssistant, Content: apologyMessage}, nil
	}

	prompt := buildPrompt(ranked, question)

	genCtx, cancel := context.WithTimeout(ctx, as.conf.Assistant.Timeout)
	defer cancel()

	answer, err := as.generator.Generate(genCtx, prompt)
	if err != nil {
		as.metrics.IncGenerationFailures()
		as.logger.Warnf(providers.TypeGen, "Generation failed, answering with apology: %s", err)
		return &models.ChatTurn{Role: models.RoleAssistant, Content: apologyMessage}, nil
	}

	shortlist := models.Truncate(ranked, as.conf.Assistant.ShortlistLimit)
	turn := &models.ChatTurn{
		Role:                models.RoleAssistant,
		Content:             answer,
		RecommendedPackages: models.Truncate(shortlist, as.conf.Assistant.InlineLimit),
	}
	return turn, shortlist
}

// plan retrieves per intent, ranks by ascending price and truncates to the
// configured retrieval window.
func (as *AssistantService) plan(ctx context.Context, intent Intent, question string) ([]models.ESIMPackage, error) {
	cat, err := as.provider.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	var retrieved []models.ESIMPackage
	switch intent.Kind {
	case IntentUnlimited:
		retrieved = cat.Unlimited()
	case IntentCountry:
		retrieved = cat.ByCountry(intent.Country)
	default:
		retrieved = cat.Search(question)
	}

	ranked := models.SortByPrice(retrieved)
	return models.Truncate(ranked, as.conf.Assistant.RetrieveLimit), nil
}

func buildPrompt(packages []models.ESIMPackage, question string) string {
	var sb strings.Builder
	sb.WriteString("You are an eSIM shopping assistant for GlobalPass.\n\n")
	sb.WriteString("IMPORTANT: Respond in the SAME LANGUAGE as the user's question. If the user writes in Chinese, respond in Chinese. If in English, respond in English.\n\n")
	sb.WriteString("Available packages:\n")
	sb.WriteString(formatPackages(packages))
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nRecommend the best option(s) strictly from the packages listed above. Keep the response concise and friendly, and remember to use the same language as the question.")
	return sb.String()
}

// formatPackages renders one package per line for the generation prompt.
func formatPackages(packages []models.ESIMPackage) string {
	if len(packages) == 0 {
		return emptyRetrievalContext
	}

	lines := make([]string, 0, len(packages))
	for i, pkg := range packages {
		lines = append(lines, fmt.Sprintf("%d. %s - %s: %s, %s, %s",
			i+1, pkg.Provider, pkg.PlanName, pkg.DataAmount, pkg.Validity, formatPrice(pkg)))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(pkg models.ESIMPackage) string {
	if pkg.Currency == "" || pkg.Currency == "USD" {
		return fmt.Sprintf("$%.2f", pkg.Price)
	}
	return fmt.Sprintf("%.2f %s", pkg.Price, pkg.Currency)
}
