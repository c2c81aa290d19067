package test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bsky_bots/bsky"
)

func Test_Consent_Followers_Drained_Across_Pages(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	h.mockClient.EXPECT().GetFollowers("").Return([]string{"did:plc:aa", "did:plc:bb"}, "cur-1", nil)
	h.mockClient.EXPECT().GetFollowers("cur-1").Return([]string{"did:plc:cc"}, "", nil)

	followers, err := agent.GetAllFollowers()
	assert.Nil(t, err)
	assert.Equal(t, []string{"did:plc:aa", "did:plc:bb", "did:plc:cc"}, followers)
}

func Test_Consent_Follower_Page_Failure_Fails_Fetch(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	h.mockClient.EXPECT().GetFollowers("").Return([]string{"did:plc:aa"}, "cur-1", nil)
	h.mockClient.EXPECT().GetFollowers("cur-1").Return(nil, "", errors.New("HTTP 500"))

	followers, err := agent.GetAllFollowers()
	assert.NotNil(t, err)
	assert.Nil(t, followers)
}

func Test_Consent_Reconcile_Failure_Aborts(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	dids := []string{followerDid}
	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Cond(strSliceMatch(dids))).
		Return(errors.New("database is locked"))

	err := agent.HandleConsent(dids)
	assert.NotNil(t, err)
}

func Test_Consent_Empty_Follower_Set_Only_Reconciles(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Cond(strSliceMatch(nil))).
		Return(nil)

	err := agent.HandleConsent(nil)
	assert.Nil(t, err)
}

func Test_Consent_Question_Dm_Sent_Once(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	dids := []string{followerDid}
	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(false, nil)
	h.mockClient.EXPECT().GetConvoForMembers(followerDid).
		Return(&bsky.ConvoView{Id: "convo-1"}, nil)
	h.mockRepo.EXPECT().HasDmSent("birb.example.com", followerDid).Return(false, nil)
	h.mockClient.EXPECT().SendMessage("convo-1", "May I reply to your posts? Answer YES to opt in.").
		Return(nil)
	h.mockRepo.EXPECT().MarkDmSent("birb.example.com", followerDid).Return(nil)
	h.mockMetrics.EXPECT().DmSent()

	err := agent.HandleConsent(dids)
	assert.Nil(t, err)
}

func Test_Consent_Granted_On_Matching_Answer(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	dids := []string{followerDid}
	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(false, nil)
	h.mockClient.EXPECT().GetConvoForMembers(followerDid).
		Return(&bsky.ConvoView{
			Id:          "convo-1",
			LastMessage: &bsky.MessageView{Id: "msg-9", Text: "YES"},
		}, nil)
	h.mockRepo.EXPECT().HasDmSent("birb.example.com", followerDid).Return(true, nil)
	h.mockRepo.EXPECT().MarkConsentGranted("birb.example.com", followerDid).Return(nil)
	h.mockMetrics.EXPECT().ConsentGranted()

	err := agent.HandleConsent(dids)
	assert.Nil(t, err)
}

func Test_Consent_Other_Answer_Changes_Nothing(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	dids := []string{followerDid}
	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(false, nil)
	h.mockClient.EXPECT().GetConvoForMembers(followerDid).
		Return(&bsky.ConvoView{
			Id:          "convo-1",
			LastMessage: &bsky.MessageView{Id: "msg-9", Text: "maybe later"},
		}, nil)
	h.mockRepo.EXPECT().HasDmSent("birb.example.com", followerDid).Return(true, nil)

	err := agent.HandleConsent(dids)
	assert.Nil(t, err)
}

func Test_Consent_Granted_Followers_Skipped(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	dids := []string{followerDid}
	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(true, nil)

	err := agent.HandleConsent(dids)
	assert.Nil(t, err)
}

func Test_Consent_One_Convo_Failure_Spares_Others(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	didBroken := "did:plc:broken0000000000000000000"
	dids := []string{didBroken, followerDid}

	h.mockRepo.EXPECT().ReconcileFollowers("birb.example.com", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", didBroken).Return(false, nil)
	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(false, nil)

	h.mockClient.EXPECT().GetConvoForMembers(didBroken).
		Return(nil, errors.New("HTTP 502"))

	h.mockClient.EXPECT().GetConvoForMembers(followerDid).
		Return(&bsky.ConvoView{Id: "convo-1"}, nil)
	h.mockRepo.EXPECT().HasDmSent("birb.example.com", followerDid).Return(false, nil)
	h.mockClient.EXPECT().SendMessage("convo-1", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().MarkDmSent("birb.example.com", followerDid).Return(nil)
	h.mockMetrics.EXPECT().DmSent()

	err := agent.HandleConsent(dids)
	assert.Nil(t, err)
}
