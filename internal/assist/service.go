package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrInvalidInput = errors.New("invalid input")

const describeModel = "gemini-2.5-flash"

type AssistServiceAPI interface {
	DraftDescription(ctx context.Context, input DescribeInput) (string, error)
}

type AssistService struct {
	Client *genai.Client

	// GenerateFn is swappable in tests
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func NewAssistService(client *genai.Client) *AssistService {
	as := &AssistService{Client: client}
	as.GenerateFn = as.generate
	return as
}

func (as *AssistService) DraftDescription(ctx context.Context, input DescribeInput) (string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.ResourceType) == "" {
		return "", fmt.Errorf("%w: resource_type is required", ErrInvalidInput)
	}

	text, err := as.GenerateFn(ctx, buildDescribePrompt(input))
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model returned no text")
	}

	return strings.TrimSpace(text), nil
}

func buildDescribePrompt(input DescribeInput) string {
	var sb strings.Builder
	sb.WriteString("Write a short, friendly directory description (2-3 sentences) for a dog training business. ")
	sb.WriteString("Plain text only, no markdown, no contact details, no made-up credentials.\n\n")

	fmt.Fprintf(&sb, "Business name: %s\n", input.Name)
	fmt.Fprintf(&sb, "Service type: %s\n", input.ResourceType)
	if input.Suburb != "" {
		fmt.Fprintf(&sb, "Located in: %s\n", input.Suburb)
	}
	if len(input.AgeSpecialties) > 0 {
		fmt.Fprintf(&sb, "Works with: %s\n", strings.Join(input.AgeSpecialties, ", "))
	}
	if len(input.BehaviourIssues) > 0 {
		fmt.Fprintf(&sb, "Helps with: %s\n", strings.Join(input.BehaviourIssues, ", "))
	}
	if input.PrimaryService != "" {
		fmt.Fprintf(&sb, "Primary service: %s\n", input.PrimaryService)
	}
	if input.SecondaryService != "" {
		fmt.Fprintf(&sb, "Also offers: %s\n", input.SecondaryService)
	}

	return sb.String()
}

func (as *AssistService) generate(ctx context.Context, prompt string) (string, error) {
	genResp, err := as.Client.Models.GenerateContent(ctx, describeModel, []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, nil)
	if err != nil {
		return "", err
	}

	for _, candidate := range genResp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", nil
}
