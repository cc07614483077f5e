package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"userapp/internal/core/domain/account"
)

const CHARSET = "UTF-8"

type SESSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewSESSender(awsConfig aws.Config, sender string) *SESSender {
	return &SESSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *SESSender) Send(ctx context.Context, m Message) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{m.To},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(CHARSET),
					Data:    &m.Subject,
				},
				Body: &types.Body{
					Html: &types.Content{
						Charset: aws.String(CHARSET),
						Data:    &m.BodyHTML,
					},
				},
			},
		},
	)
	if err != nil {
		return fmt.Errorf("could not send email to %s: %w", m.To, err)
	}
	return nil
}

func (s *SESSender) SendVerificationCode(
	ctx context.Context,
	a account.Account,
	code string,
	frontBaseURL string,
) error {
	return s.Send(ctx, NewVerificationMessage(a, code, frontBaseURL))
}

func (s *SESSender) SendPasswordResetCode(
	ctx context.Context,
	a account.Account,
	code string,
	frontBaseURL string,
) error {
	return s.Send(ctx, NewPasswordResetMessage(a, code, frontBaseURL))
}
