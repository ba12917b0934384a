package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"tutorbuddy/internal/models"
)

// EmailService sends guardian notifications via Amazon SES. Without a
// configured from-address the service runs disabled and every send is a
// logged no-op, so local setups need no AWS credentials.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendAchievementEmail tells the guardian about a newly earned badge
func (s *EmailService) SendAchievementEmail(ctx context.Context, toEmail, guardianName, childName string, achievement models.Achievement) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): achievement to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("%s earned a new achievement!", childName)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4a90e2;">New Achievement %s</h1>
		<p>Hi %s,</p>
		<p><strong>%s</strong> just earned <strong>%s</strong> — %s (+%d points).</p>
		<p>Keep encouraging them to ask great questions!</p>
		<p style="font-size: 12px; color: #666;">This is an automated email from TutorBuddy. Please do not reply.</p>
	</div>
</body>
</html>
`, achievement.Icon, guardianName, childName, achievement.Title, achievement.Description, achievement.Points)

	textBody := fmt.Sprintf(`Hi %s,

%s just earned "%s" — %s (+%d points).

Keep encouraging them to ask great questions!

---
This is an automated email from TutorBuddy. Please do not reply.
`, guardianName, childName, achievement.Title, achievement.Description, achievement.Points)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendProgressEmail sends the periodic learning digest to the guardian
func (s *EmailService) SendProgressEmail(ctx context.Context, toEmail, guardianName, childName string, avatar models.AvatarProgress, conversationCount int) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress digest to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("%s's learning progress", childName)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4a90e2;">Learning Progress</h1>
		<p>Hi %s,</p>
		<p>Here's how <strong>%s</strong> is doing:</p>
		<ul>
			<li>Level %d with %d points</li>
			<li>%d achievements earned</li>
			<li>%d tutoring conversations saved</li>
		</ul>
		<p style="font-size: 12px; color: #666;">This is an automated email from TutorBuddy. Please do not reply.</p>
	</div>
</body>
</html>
`, guardianName, childName, avatar.Level, avatar.Points, len(avatar.Achievements), conversationCount)

	textBody := fmt.Sprintf(`Hi %s,

Here's how %s is doing:

- Level %d with %d points
- %d achievements earned
- %d tutoring conversations saved

---
This is an automated email from TutorBuddy. Please do not reply.
`, guardianName, childName, avatar.Level, avatar.Points, len(avatar.Achievements), conversationCount)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: to=%s subject=%q", toEmail, subject)
	return nil
}
