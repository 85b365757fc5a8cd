package moderation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"modbot/internal/gateway"
	"modbot/internal/moderation"
	"modbot/internal/moderation/mocks"
)

const (
	botUserID gateway.Snowflake = 999
	guildID   gateway.Snowflake = 100
	channelID gateway.Snowflake = 42
	authorID  gateway.Snowflake = 7
)

const inviteContent = "join my server: https://discord.gg/abc123"

type GateChainSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	designations  *mocks.MockDesignationService
	authorization *mocks.MockAuthorizationService
	transport     *gateway.MemoryTransport
	chain         *moderation.Chain
}

func TestGateChainSuite(t *testing.T) {
	suite.Run(t, new(GateChainSuite))
}

func (s *GateChainSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.designations = mocks.NewMockDesignationService(s.ctrl)
	s.authorization = mocks.NewMockAuthorizationService(s.ctrl)
	s.transport = gateway.NewMemoryTransport()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.chain = moderation.NewChain(
		gateway.NewBus(botUserID, s.transport),
		s.designations,
		s.authorization,
		moderation.NewInviteMatcher(2*time.Second),
		time.Second,
		logger,
		nil,
	)
}

func (s *GateChainSuite) TearDownTest() {
	s.ctrl.Finish()
}

func guildMessage(content string) gateway.Message {
	return gateway.Message{
		ID:        9001,
		ChannelID: channelID,
		AuthorID:  authorID,
		Content:   content,
		Member:    &gateway.Member{UserID: authorID, GuildID: guildID, Mention: "<@7>"},
		Channel:   &gateway.GuildChannel{ChannelID: channelID, GuildID: guildID},
	}
}

func (s *GateChainSuite) expectModeratedChannel() {
	s.designations.EXPECT().
		HasDesignation(gomock.Any(), guildID, channelID, moderation.DesignationUnmoderated).
		Return(false, nil)
}

func (s *GateChainSuite) TestSkipsWhenAuthorIsNotGuildMember() {
	msg := guildMessage(inviteContent)
	msg.Member = nil

	verdict := s.chain.Evaluate(context.Background(), msg)

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipShape, verdict.Reason)
}

func (s *GateChainSuite) TestSkipsWhenChannelIsNotGuildScoped() {
	msg := guildMessage(inviteContent)
	msg.Channel = nil

	verdict := s.chain.Evaluate(context.Background(), msg)

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipShape, verdict.Reason)
}

func (s *GateChainSuite) TestSkipsOwnMessagesRegardlessOfContent() {
	msg := guildMessage(inviteContent)
	msg.AuthorID = botUserID
	msg.Member = &gateway.Member{UserID: botUserID, GuildID: guildID}

	verdict := s.chain.Evaluate(context.Background(), msg)

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipSelf, verdict.Reason)
}

func (s *GateChainSuite) TestSkipsUnmoderatedChannel() {
	s.designations.EXPECT().
		HasDesignation(gomock.Any(), guildID, channelID, moderation.DesignationUnmoderated).
		Return(true, nil)

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipUnmoderated, verdict.Reason)
}

func (s *GateChainSuite) TestDesignationLookupFailureFailsClosed() {
	s.designations.EXPECT().
		HasDesignation(gomock.Any(), guildID, channelID, moderation.DesignationUnmoderated).
		Return(false, errors.New("designation backend down"))

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipDesignationError, verdict.Reason)
}

func (s *GateChainSuite) TestSkipsWithoutInviteAndWithoutLaterLookups() {
	s.expectModeratedChannel()
	// No authorization expectation: the pattern gate must short-circuit
	// before the claim lookup, and the controller verifies the mock was
	// never touched.

	verdict := s.chain.Evaluate(context.Background(), guildMessage("hello world"))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipNoMatch, verdict.Reason)
}

func (s *GateChainSuite) TestProceedsOnForeignInvite() {
	s.expectModeratedChannel()
	s.transport.SetActiveInvites(guildID, []string{"https://discord.gg/ourguild"})
	s.authorization.EXPECT().
		HasClaim(gomock.Any(), guildID, authorID, moderation.ClaimPostInviteLink).
		Return(false, nil)

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.True(verdict.Proceed)
	s.Equal([]string{"https://discord.gg/abc123"}, verdict.Matches)
}

func (s *GateChainSuite) TestSkipsSelfReferentialInvite() {
	s.expectModeratedChannel()
	s.transport.SetActiveInvites(guildID, []string{"https://discord.gg/abc123"})

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipOwnGuildInvite, verdict.Reason)
}

func (s *GateChainSuite) TestInviteListingUnavailableFailsOpen() {
	s.expectModeratedChannel()
	// No invites configured: the transport reports the capability as
	// unavailable and the gate applies no exclusions.
	s.authorization.EXPECT().
		HasClaim(gomock.Any(), guildID, authorID, moderation.ClaimPostInviteLink).
		Return(false, nil)

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.True(verdict.Proceed)
}

func (s *GateChainSuite) TestSkipsExemptAuthor() {
	s.expectModeratedChannel()
	s.transport.SetActiveInvites(guildID, nil)
	s.authorization.EXPECT().
		HasClaim(gomock.Any(), guildID, authorID, moderation.ClaimPostInviteLink).
		Return(true, nil)

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipExempt, verdict.Reason)
}

func (s *GateChainSuite) TestClaimLookupFailureFailsClosed() {
	s.expectModeratedChannel()
	s.transport.SetActiveInvites(guildID, nil)
	s.authorization.EXPECT().
		HasClaim(gomock.Any(), guildID, authorID, moderation.ClaimPostInviteLink).
		Return(false, errors.New("authorization backend down"))

	verdict := s.chain.Evaluate(context.Background(), guildMessage(inviteContent))

	s.False(verdict.Proceed)
	s.Equal(moderation.SkipAuthorizationError, verdict.Reason)
}
