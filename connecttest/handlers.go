package connecttest

import (
	"net/http"
	"strings"

	connect "github.com/aws-amplify/aws-sdk-connect-go"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

const (
	codeInvalidParameter = "InvalidParameterException"
	codeInvalidRequest   = "InvalidRequestException"
	codeNotFound         = "ResourceNotFoundException"
	codeDuplicate        = "DuplicateResourceException"
)

// instance returns the state of the instance named by the InstanceId label.
// The caller must hold s.mu.
func (s *Server) instance(w http.ResponseWriter, r *http.Request) (*instanceState, bool) {
	id := pathParam(r, "InstanceId")
	inst, ok := s.instances[id]
	if !ok {
		s.writeError(w, codeNotFound, "instance "+id+" not found")
		return nil, false
	}
	return inst, true
}

func (s *Server) listInstances(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var all []types.InstanceSummary
	for _, id := range sortedKeys(s.instances) {
		inst := s.instances[id].instance
		all = append(all, types.InstanceSummary{
			Id:                     inst.Id,
			Arn:                    inst.Arn,
			IdentityManagementType: inst.IdentityManagementType,
			InstanceAlias:          inst.InstanceAlias,
			CreatedTime:            inst.CreatedTime,
			ServiceRole:            inst.ServiceRole,
			InstanceStatus:         inst.InstanceStatus,
			InboundCallsEnabled:    inst.InboundCallsEnabled,
			OutboundCallsEnabled:   inst.OutboundCallsEnabled,
			InstanceAccessUrl:      inst.InstanceAccessUrl,
		})
	}

	items, next, err := page(all, q.NextToken, q.MaxResults)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	s.writeOutput(w, &connect.ListInstancesOutput{InstanceSummaryList: items, NextToken: next})
}

func (s *Server) describeInstance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.instance(w, r)
	if !ok {
		return
	}
	if st.pollsUntilActive > 0 {
		st.pollsUntilActive--
	} else if st.instance.InstanceStatus == types.InstanceStatusCreationInProgress {
		st.instance.InstanceStatus = types.InstanceStatusActive
	}

	inst := st.instance
	inst.Tags = copyTags(s.tags[*inst.Arn])
	s.writeOutput(w, &connect.DescribeInstanceOutput{Instance: &inst})
}

func (s *Server) createQueue(w http.ResponseWriter, r *http.Request) {
	var in connect.CreateQueueInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}
	if in.Name == nil || in.HoursOfOperationId == nil {
		s.writeError(w, codeInvalidParameter, "Name and HoursOfOperationId are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	instanceID := *inst.instance.Id
	for _, q := range s.queues[instanceID] {
		if *q.Name == *in.Name {
			s.writeError(w, codeDuplicate, "queue "+*in.Name+" already exists")
			return
		}
	}

	id := s.newID()
	q := &types.Queue{
		Name:                 in.Name,
		QueueId:              ptr(id),
		QueueArn:             ptr(*inst.instance.Arn + "/queue/" + id),
		Description:          in.Description,
		OutboundCallerConfig: in.OutboundCallerConfig,
		HoursOfOperationId:   in.HoursOfOperationId,
		MaxContacts:          in.MaxContacts,
		Status:               types.QueueStatusEnabled,
		LastModifiedTime:     ptr(s.now()),
		LastModifiedRegion:   ptr(s.Region),
	}
	if s.queues[instanceID] == nil {
		s.queues[instanceID] = map[string]*types.Queue{}
	}
	s.queues[instanceID][id] = q
	s.tags[*q.QueueArn] = copyTags(in.Tags)

	s.writeOutput(w, &connect.CreateQueueOutput{QueueArn: q.QueueArn, QueueId: q.QueueId})
}

func (s *Server) listQueues(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	queueTypes := splitList(q.QueueTypes)

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	queues := s.queues[*inst.instance.Id]

	var all []types.QueueSummary
	for _, id := range sortedKeys(queues) {
		queue := queues[id]
		if len(queueTypes) != 0 && !contains(queueTypes, string(types.QueueTypeStandard)) {
			continue
		}
		all = append(all, types.QueueSummary{
			Id:                 queue.QueueId,
			Arn:                queue.QueueArn,
			Name:               queue.Name,
			QueueType:          types.QueueTypeStandard,
			LastModifiedTime:   queue.LastModifiedTime,
			LastModifiedRegion: queue.LastModifiedRegion,
		})
	}

	items, next, err := page(all, q.NextToken, q.MaxResults)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	s.writeOutput(w, &connect.ListQueuesOutput{QueueSummaryList: items, NextToken: next})
}

// queue returns the queue named by the InstanceId and QueueId labels. The
// caller must hold s.mu.
func (s *Server) queue(w http.ResponseWriter, r *http.Request) (*types.Queue, bool) {
	inst, ok := s.instance(w, r)
	if !ok {
		return nil, false
	}
	id := pathParam(r, "QueueId")
	q, ok := s.queues[*inst.instance.Id][id]
	if !ok {
		s.writeError(w, codeNotFound, "queue "+id+" not found")
		return nil, false
	}
	return q, true
}

func (s *Server) describeQueue(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queue(w, r)
	if !ok {
		return
	}
	out := *q
	out.Tags = copyTags(s.tags[*q.QueueArn])
	s.writeOutput(w, &connect.DescribeQueueOutput{Queue: &out})
}

func (s *Server) deleteQueue(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queue(w, r)
	if !ok {
		return
	}
	delete(s.queues[pathParam(r, "InstanceId")], *q.QueueId)
	delete(s.tags, *q.QueueArn)
	s.writeOutput(w, &connect.DeleteQueueOutput{})
}

func (s *Server) updateQueueName(w http.ResponseWriter, r *http.Request) {
	var in connect.UpdateQueueNameInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queue(w, r)
	if !ok {
		return
	}
	if in.Name != nil {
		q.Name = in.Name
	}
	if in.Description != nil {
		q.Description = in.Description
	}
	q.LastModifiedTime = ptr(s.now())
	s.writeOutput(w, &connect.UpdateQueueNameOutput{})
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var in connect.CreateUserInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}
	if in.Username == nil || in.PhoneConfig == nil || in.RoutingProfileId == nil {
		s.writeError(w, codeInvalidParameter, "Username, PhoneConfig and RoutingProfileId are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	instanceID := *inst.instance.Id
	for _, u := range s.users[instanceID] {
		if *u.Username == *in.Username {
			s.writeError(w, codeDuplicate, "user "+*in.Username+" already exists")
			return
		}
	}

	id := s.newID()
	u := &types.User{
		Id:                 ptr(id),
		Arn:                ptr(*inst.instance.Arn + "/agent/" + id),
		Username:           in.Username,
		IdentityInfo:       in.IdentityInfo,
		PhoneConfig:        in.PhoneConfig,
		DirectoryUserId:    in.DirectoryUserId,
		SecurityProfileIds: in.SecurityProfileIds,
		RoutingProfileId:   in.RoutingProfileId,
		HierarchyGroupId:   in.HierarchyGroupId,
		LastModifiedTime:   ptr(s.now()),
		LastModifiedRegion: ptr(s.Region),
	}
	if s.users[instanceID] == nil {
		s.users[instanceID] = map[string]*types.User{}
	}
	s.users[instanceID][id] = u
	s.tags[*u.Arn] = copyTags(in.Tags)

	s.writeOutput(w, &connect.CreateUserOutput{UserId: u.Id, UserArn: u.Arn})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	users := s.users[*inst.instance.Id]

	var all []types.UserSummary
	for _, id := range sortedKeys(users) {
		u := users[id]
		all = append(all, types.UserSummary{
			Id:                 u.Id,
			Arn:                u.Arn,
			Username:           u.Username,
			LastModifiedTime:   u.LastModifiedTime,
			LastModifiedRegion: u.LastModifiedRegion,
		})
	}

	items, next, err := page(all, q.NextToken, q.MaxResults)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	s.writeOutput(w, &connect.ListUsersOutput{UserSummaryList: items, NextToken: next})
}

// user returns the user named by the InstanceId and UserId labels. The
// caller must hold s.mu.
func (s *Server) user(w http.ResponseWriter, r *http.Request) (*types.User, bool) {
	inst, ok := s.instance(w, r)
	if !ok {
		return nil, false
	}
	id := pathParam(r, "UserId")
	u, ok := s.users[*inst.instance.Id][id]
	if !ok {
		s.writeError(w, codeNotFound, "user "+id+" not found")
		return nil, false
	}
	return u, true
}

func (s *Server) describeUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.user(w, r)
	if !ok {
		return
	}
	out := *u
	out.Tags = copyTags(s.tags[*u.Arn])
	s.writeOutput(w, &connect.DescribeUserOutput{User: &out})
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.user(w, r)
	if !ok {
		return
	}
	delete(s.users[pathParam(r, "InstanceId")], *u.Id)
	delete(s.tags, *u.Arn)
	s.writeOutput(w, &connect.DeleteUserOutput{})
}

func (s *Server) createVocabulary(w http.ResponseWriter, r *http.Request) {
	var in connect.CreateVocabularyInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}
	if in.VocabularyName == nil || in.Content == nil || len(in.LanguageCode) == 0 {
		s.writeError(w, codeInvalidParameter, "VocabularyName, LanguageCode and Content are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	instanceID := *inst.instance.Id

	// A repeated client token returns the vocabulary it created.
	if in.ClientToken != nil {
		for _, v := range s.vocabularies[instanceID] {
			if v.clientToken == *in.ClientToken {
				s.writeOutput(w, vocabularyOutput(&v.vocabulary))
				return
			}
		}
	}

	id := s.newID()
	state := types.VocabularyStateActive
	if s.VocabularyPolls > 0 {
		state = types.VocabularyStateCreationInProgress
	}
	v := &vocabularyState{
		vocabulary: types.Vocabulary{
			Name:             in.VocabularyName,
			Id:               ptr(id),
			Arn:              ptr(*inst.instance.Arn + "/vocabulary/" + id),
			LanguageCode:     in.LanguageCode,
			State:            state,
			LastModifiedTime: ptr(s.now()),
			Content:          in.Content,
		},
		pollsUntilActive: s.VocabularyPolls,
	}
	if in.ClientToken != nil {
		v.clientToken = *in.ClientToken
	}
	if s.vocabularies[instanceID] == nil {
		s.vocabularies[instanceID] = map[string]*vocabularyState{}
	}
	s.vocabularies[instanceID][id] = v
	s.tags[*v.vocabulary.Arn] = copyTags(in.Tags)

	s.writeOutput(w, vocabularyOutput(&v.vocabulary))
}

func vocabularyOutput(v *types.Vocabulary) *connect.CreateVocabularyOutput {
	return &connect.CreateVocabularyOutput{
		VocabularyArn: v.Arn,
		VocabularyId:  v.Id,
		State:         v.State,
	}
}

// vocabulary returns the vocabulary named by the InstanceId and VocabularyId
// labels. The caller must hold s.mu.
func (s *Server) vocabulary(w http.ResponseWriter, r *http.Request) (*vocabularyState, bool) {
	inst, ok := s.instance(w, r)
	if !ok {
		return nil, false
	}
	id := pathParam(r, "VocabularyId")
	v, ok := s.vocabularies[*inst.instance.Id][id]
	if !ok {
		s.writeError(w, codeNotFound, "vocabulary "+id+" not found")
		return nil, false
	}
	return v, true
}

func (s *Server) describeVocabulary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vocabulary(w, r)
	if !ok {
		return
	}
	if v.pollsUntilActive > 0 {
		v.pollsUntilActive--
	} else if v.vocabulary.State == types.VocabularyStateCreationInProgress {
		v.vocabulary.State = types.VocabularyStateActive
	}

	out := v.vocabulary
	out.Tags = copyTags(s.tags[*out.Arn])
	s.writeOutput(w, &connect.DescribeVocabularyOutput{Vocabulary: &out})
}

func (s *Server) deleteVocabulary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vocabulary(w, r)
	if !ok {
		return
	}
	delete(s.vocabularies[pathParam(r, "InstanceId")], *v.vocabulary.Id)
	delete(s.tags, *v.vocabulary.Arn)
	s.writeOutput(w, &connect.DeleteVocabularyOutput{
		VocabularyArn: v.vocabulary.Arn,
		VocabularyId:  v.vocabulary.Id,
		State:         types.VocabularyStateDeleteInProgress,
	})
}

func (s *Server) searchVocabularies(w http.ResponseWriter, r *http.Request) {
	var in connect.SearchVocabulariesInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	vocabularies := s.vocabularies[*inst.instance.Id]

	var all []types.VocabularySummary
	for _, id := range sortedKeys(vocabularies) {
		v := vocabularies[id].vocabulary
		if len(in.State) != 0 && v.State != in.State {
			continue
		}
		if len(in.LanguageCode) != 0 && v.LanguageCode != in.LanguageCode {
			continue
		}
		if in.NameStartsWith != nil && !strings.HasPrefix(*v.Name, *in.NameStartsWith) {
			continue
		}
		all = append(all, types.VocabularySummary{
			Name:             v.Name,
			Id:               v.Id,
			Arn:              v.Arn,
			LanguageCode:     v.LanguageCode,
			State:            v.State,
			LastModifiedTime: v.LastModifiedTime,
			FailureReason:    v.FailureReason,
		})
	}

	var token string
	if in.NextToken != nil {
		token = *in.NextToken
	}
	var maxResults int32
	if in.MaxResults != nil {
		maxResults = *in.MaxResults
	}
	items, next, err := page(all, token, maxResults)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	s.writeOutput(w, &connect.SearchVocabulariesOutput{VocabularySummaryList: items, NextToken: next})
}

// resource returns the ARN named by the resourceArn label. The caller must
// hold s.mu.
func (s *Server) resource(w http.ResponseWriter, r *http.Request) (string, bool) {
	arn := pathParam(r, "resourceArn")
	if _, ok := s.tags[arn]; !ok {
		s.writeError(w, codeNotFound, "resource "+arn+" not found")
		return "", false
	}
	return arn, true
}

func (s *Server) listTagsForResource(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arn, ok := s.resource(w, r)
	if !ok {
		return
	}
	s.writeOutput(w, &connect.ListTagsForResourceOutput{Tags: copyTags(s.tags[arn])})
}

func (s *Server) tagResource(w http.ResponseWriter, r *http.Request) {
	var in connect.TagResourceInput
	if err := s.decodeBody(r, &in); err != nil {
		s.writeError(w, codeInvalidRequest, err.Error())
		return
	}
	if len(in.Tags) == 0 {
		s.writeError(w, codeInvalidParameter, "tags must not be empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	arn, ok := s.resource(w, r)
	if !ok {
		return
	}
	for k, v := range in.Tags {
		s.tags[arn][k] = v
	}
	s.writeOutput(w, &connect.TagResourceOutput{})
}

func (s *Server) untagResource(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		s.writeError(w, codeInvalidParameter, err.Error())
		return
	}
	keys := splitList(q.TagKeys)
	if len(keys) == 0 {
		s.writeError(w, codeInvalidParameter, "tagKeys must not be empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	arn, ok := s.resource(w, r)
	if !ok {
		return
	}
	for _, k := range keys {
		delete(s.tags[arn], k)
	}
	s.writeOutput(w, &connect.UntagResourceOutput{})
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}
