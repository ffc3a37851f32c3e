package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"hostlane/internal/repositories"
	"hostlane/pkg/utils"
)

// CopywriterService drafts marketing descriptions for plans from their
// raw specs, so admins don't ship plans with an empty description. The
// generated copy is persisted on the plan.
type CopywriterService interface {
	GenerateDescription(ctx context.Context, planID string, tone string) (string, error)
}

type openAICopywriter struct {
	client   *openai.Client
	model    string
	planRepo repositories.IPlanRepository
}

func NewOpenAICopywriter(apiKey string, model string, planRepo repositories.IPlanRepository) (CopywriterService, error) {
	if apiKey == "" {
		return nil, errors.New("missing OpenAI API key")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAICopywriter{
		client:   openai.NewClient(apiKey),
		model:    model,
		planRepo: planRepo,
	}, nil
}

func (c *openAICopywriter) GenerateDescription(ctx context.Context, planID string, tone string) (string, error) {
	if tone == "" {
		tone = "professional"
	}
	if _, err := uuid.Parse(planID); err != nil {
		return "", utils.ErrPlanNotFound
	}

	plan, err := c.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if plan == nil {
		return "", utils.ErrPlanNotFound
	}

	prompt := fmt.Sprintf(
		"Write a short (2-3 sentence) %s product description for a %s hosting plan named %q. "+
			"Specs: CPU %s, RAM %s, storage %s, bandwidth %s, OS %s. Price: PKR %d.%02d per month. "+
			"No markdown, no bullet points, plain prose only.",
		tone, strings.ToUpper(string(plan.Category)), plan.Name,
		plan.CPU, plan.RAM, plan.Storage, plan.Bandwidth, plan.OS,
		plan.PricePKR/100, plan.PricePKR%100)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return "", fmt.Errorf("description generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("description generation returned no choices")
	}

	description := strings.TrimSpace(resp.Choices[0].Message.Content)

	if _, err := c.planRepo.UpdatePlan(ctx, planID, repositories.PlanUpdate{Description: &description}); err != nil {
		return "", utils.ErrDatabaseError
	}

	return description, nil
}
