package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog"

	"github.com/mkt-tools/quote-forge/pkg/models/domain"
)

// Config carries the SES credentials and sender identity.
type Config struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email"`
	ReplyTo   string `mapstructure:"reply_to"`
}

// Sender delivers quote emails through AWS SES.
type Sender struct {
	client   *sesv2.Client
	renderer *Renderer
	cfg      Config
}

func NewSender(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Sender{
		client:   sesv2.NewFromConfig(awsCfg),
		renderer: renderer,
		cfg:      cfg,
	}, nil
}

// SendQuote renders the breakdown and delivers it to the submission's
// contact address.
func (s *Sender) SendQuote(ctx context.Context, rec domain.QuoteRecord) error {
	logger := zerolog.Ctx(ctx)

	html, err := s.renderer.RenderHTML(rec)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Tu propuesta de marketing para %s", rec.Submission.Business.CompanyName)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{rec.Submission.Business.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(s.renderer.RenderText(rec)), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("quote_id"), Value: aws.String(rec.ID)},
		},
	}

	if s.cfg.ReplyTo != "" {
		input.ReplyToAddresses = []string{s.cfg.ReplyTo}
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send quote email: %w", err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	logger.Info().
		Str("quote_id", rec.ID).
		Str("message_id", messageID).
		Msg("quote email sent")

	return nil
}
