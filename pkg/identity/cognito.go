package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// CognitoClient defines the Cognito operations used by CognitoProvider.
type CognitoClient interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error)
	AdminRespondToAuthChallenge(ctx context.Context, params *cip.AdminRespondToAuthChallengeInput, optFns ...func(*cip.Options)) (*cip.AdminRespondToAuthChallengeOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
}

// CognitoProvider implements Provider against an AWS Cognito user pool with
// a client-secret app client. It is safe for concurrent use.
type CognitoProvider struct {
	client     CognitoClient
	clientID   string
	userPoolID string
}

// CognitoOption defines a function that configures CognitoProvider.
type CognitoOption func(*cognitoOptions)

type cognitoOptions struct {
	client           CognitoClient
	httpClient       *http.Client
	awsConfigOptions []func(*awsconfig.LoadOptions) error
}

// WithClient sets a custom pre-configured Cognito client.
// Useful for testing with fakes.
func WithClient(client CognitoClient) CognitoOption {
	return func(o *cognitoOptions) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for provider requests.
func WithHTTPClient(client *http.Client) CognitoOption {
	return func(o *cognitoOptions) {
		o.httpClient = client
	}
}

// WithAWSConfigOption adds a custom AWS config option.
func WithAWSConfigOption(option func(*awsconfig.LoadOptions) error) CognitoOption {
	return func(o *cognitoOptions) {
		o.awsConfigOptions = append(o.awsConfigOptions, option)
	}
}

// NewCognitoProvider creates a provider for the configured user pool.
func NewCognitoProvider(ctx context.Context, cfg Config, opts ...CognitoOption) (*CognitoProvider, error) {
	if cfg.ClientID == "" || cfg.UserPoolID == "" {
		return nil, ErrInvalidConfig
	}

	options := &cognitoOptions{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, awsconfig.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.awsConfigOptions...)

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}

		clientOpts := []func(*cip.Options){}
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, func(o *cip.Options) {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			})
		}
		client = cip.NewFromConfig(awsCfg, clientOpts...)
	}

	return &CognitoProvider{
		client:     client,
		clientID:   cfg.ClientID,
		userPoolID: cfg.UserPoolID,
	}, nil
}

// Register creates an unconfirmed account with the email attribute set and
// triggers confirmation code delivery.
func (p *CognitoProvider) Register(ctx context.Context, username, password, secretHash string) (*Registration, error) {
	out, err := p.client.SignUp(ctx, &cip.SignUpInput{
		ClientId:   aws.String(p.clientID),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(username),
		Password:   aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(username)},
		},
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &Registration{
		UserSub:  aws.ToString(out.UserSub),
		Delivery: codeDelivery(out.CodeDeliveryDetails),
	}, nil
}

// ConfirmRegistration completes account registration with the emailed code.
func (p *CognitoProvider) ConfirmRegistration(ctx context.Context, username, code, secretHash string) error {
	_, err := p.client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		SecretHash:       aws.String(secretHash),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// InitiateAuth verifies credentials and returns either an MFA challenge or,
// if the pool is misconfigured to skip MFA, the final tokens. The caller
// decides which outcomes are acceptable.
func (p *CognitoProvider) InitiateAuth(ctx context.Context, username, password, secretHash string) (*AuthOutcome, error) {
	out, err := p.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		UserPoolId: aws.String(p.userPoolID),
		ClientId:   aws.String(p.clientID),
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME":    username,
			"PASSWORD":    password,
			"SECRET_HASH": secretHash,
		},
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return &AuthOutcome{
		ChallengeName: string(out.ChallengeName),
		Session:       aws.ToString(out.Session),
		Tokens:        tokenSet(out.AuthenticationResult),
	}, nil
}

// RespondToChallenge answers the email OTP challenge and returns the issued
// tokens.
func (p *CognitoProvider) RespondToChallenge(ctx context.Context, username, code, session, secretHash string) (*TokenSet, error) {
	out, err := p.client.AdminRespondToAuthChallenge(ctx, &cip.AdminRespondToAuthChallengeInput{
		UserPoolId:    aws.String(p.userPoolID),
		ClientId:      aws.String(p.clientID),
		ChallengeName: types.ChallengeNameTypeEmailOtp,
		Session:       aws.String(session),
		ChallengeResponses: map[string]string{
			"USERNAME":       username,
			"EMAIL_OTP_CODE": code,
			"SECRET_HASH":    secretHash,
		},
	})
	if err != nil {
		return nil, classifyError(err)
	}

	tokens := tokenSet(out.AuthenticationResult)
	if tokens == nil {
		return nil, &Error{
			Category:    CategoryOther,
			Description: "challenge response returned no tokens",
		}
	}
	return tokens, nil
}

// ResendConfirmationCode re-sends the registration confirmation code.
func (p *CognitoProvider) ResendConfirmationCode(ctx context.Context, username, secretHash string) (*CodeDelivery, error) {
	out, err := p.client.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId:   aws.String(p.clientID),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(username),
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return codeDelivery(out.CodeDeliveryDetails), nil
}

// ForgotPassword triggers password reset code delivery.
func (p *CognitoProvider) ForgotPassword(ctx context.Context, username, secretHash string) (*CodeDelivery, error) {
	out, err := p.client.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId:   aws.String(p.clientID),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(username),
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return codeDelivery(out.CodeDeliveryDetails), nil
}

// ConfirmForgotPassword completes a password reset with the emailed code.
func (p *CognitoProvider) ConfirmForgotPassword(ctx context.Context, username, code, newPassword, secretHash string) error {
	_, err := p.client.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(p.clientID),
		SecretHash:       aws.String(secretHash),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
	})
	if err != nil {
		return classifyError(err)
	}
	return nil
}

func codeDelivery(d *types.CodeDeliveryDetailsType) *CodeDelivery {
	if d == nil {
		return nil
	}
	return &CodeDelivery{
		Destination: aws.ToString(d.Destination),
		Medium:      string(d.DeliveryMedium),
	}
}

func tokenSet(r *types.AuthenticationResultType) *TokenSet {
	if r == nil {
		return nil
	}
	return &TokenSet{
		AccessToken:  aws.ToString(r.AccessToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		IDToken:      aws.ToString(r.IdToken),
		ExpiresIn:    r.ExpiresIn,
	}
}

// classifyError converts Cognito errors to the fixed failure categories.
// Unrecognized errors keep their original description under CategoryOther.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var (
		userNotFound     *types.UserNotFoundException
		usernameExists   *types.UsernameExistsException
		codeMismatch     *types.CodeMismatchException
		expiredCode      *types.ExpiredCodeException
		notAuthorized    *types.NotAuthorizedException
		userNotConfirmed *types.UserNotConfirmedException
		invalidParameter *types.InvalidParameterException
	)

	switch {
	case errors.As(err, &userNotFound):
		return &Error{Category: CategoryUserNotFound, Description: userNotFound.ErrorMessage()}
	case errors.As(err, &usernameExists):
		return &Error{Category: CategoryUsernameExists, Description: usernameExists.ErrorMessage()}
	case errors.As(err, &codeMismatch):
		return &Error{Category: CategoryCodeMismatch, Description: codeMismatch.ErrorMessage()}
	case errors.As(err, &expiredCode):
		return &Error{Category: CategoryExpiredCode, Description: expiredCode.ErrorMessage()}
	case errors.As(err, &notAuthorized):
		return &Error{Category: CategoryNotAuthorized, Description: notAuthorized.ErrorMessage()}
	case errors.As(err, &userNotConfirmed):
		return &Error{Category: CategoryUserNotConfirmed, Description: userNotConfirmed.ErrorMessage()}
	case errors.As(err, &invalidParameter):
		return &Error{Category: CategoryInvalidParameter, Description: invalidParameter.ErrorMessage()}
	}

	// Fall back to the wire-level error code for errors that arrive without
	// their modeled type (e.g. through proxies or older endpoints).
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		category := CategoryOther
		switch apiErr.ErrorCode() {
		case "UserNotFoundException":
			category = CategoryUserNotFound
		case "UsernameExistsException":
			category = CategoryUsernameExists
		case "CodeMismatchException":
			category = CategoryCodeMismatch
		case "ExpiredCodeException":
			category = CategoryExpiredCode
		case "NotAuthorizedException":
			category = CategoryNotAuthorized
		case "UserNotConfirmedException":
			category = CategoryUserNotConfirmed
		case "InvalidParameterException":
			category = CategoryInvalidParameter
		}
		return &Error{Category: category, Description: apiErr.ErrorMessage()}
	}

	return &Error{Category: CategoryOther, Description: err.Error()}
}
