package types_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/go-cmp/cmp"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/encoding/json"
	"github.com/aws-amplify/aws-sdk-connect-go/internal/schemas"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

func marshal(schema *core.Schema, v core.Serializable) []byte {
	s := json.NewShapeSerializer()
	s.WriteStruct(schema, v)
	return s.Bytes()
}

func TestEvaluationFormRoundTrip(t *testing.T) {
	numeric := types.EvaluationFormQuestion{
		Title:        aws.String("Customer sentiment"),
		RefId:        aws.String("q-numeric"),
		QuestionType: types.EvaluationFormQuestionTypeNumeric,
		QuestionTypeProperties: &types.EvaluationFormQuestionTypePropertiesMemberNumeric{
			Value: types.EvaluationFormNumericQuestionProperties{
				MinValue: aws.Int32(0),
				MaxValue: aws.Int32(10),
				Options: []types.EvaluationFormNumericQuestionOption{
					{MinValue: aws.Int32(0), MaxValue: aws.Int32(4), Score: aws.Int32(0), AutomaticFail: aws.Bool(true)},
					{MinValue: aws.Int32(5), MaxValue: aws.Int32(10), Score: aws.Int32(10)},
				},
				Automation: &types.EvaluationFormNumericQuestionAutomationMemberPropertyValue{
					Value: types.NumericQuestionPropertyValueAutomation{
						Label: types.NumericQuestionPropertyAutomationLabelOverallCustomerSentimentScore,
					},
				},
			},
		},
		Weight: aws.Float64(12.5),
	}
	singleSelect := types.EvaluationFormQuestion{
		Title:                aws.String("Greeted the customer"),
		RefId:                aws.String("q-greeting"),
		NotApplicableEnabled: aws.Bool(false),
		QuestionType:         types.EvaluationFormQuestionTypeSingleselect,
		QuestionTypeProperties: &types.EvaluationFormQuestionTypePropertiesMemberSingleSelect{
			Value: types.EvaluationFormSingleSelectQuestionProperties{
				Options: []types.EvaluationFormSingleSelectQuestionOption{
					{RefId: aws.String("yes"), Text: aws.String("Yes"), Score: aws.Int32(10)},
					{RefId: aws.String("no"), Text: aws.String("No"), Score: aws.Int32(0)},
				},
				DisplayAs: types.EvaluationFormSingleSelectQuestionDisplayModeDropdown,
				Automation: &types.EvaluationFormSingleSelectQuestionAutomation{
					Options: []types.EvaluationFormSingleSelectQuestionAutomationOption{
						&types.EvaluationFormSingleSelectQuestionAutomationOptionMemberRuleCategory{
							Value: types.SingleSelectQuestionRuleCategoryAutomation{
								Category:    aws.String("greeting"),
								Condition:   types.SingleSelectQuestionRuleCategoryAutomationConditionPresent,
								OptionRefId: aws.String("yes"),
							},
						},
					},
					DefaultOptionRefId: aws.String("no"),
				},
			},
		},
	}

	expect := types.EvaluationForm{
		EvaluationFormId:      aws.String("form-1"),
		EvaluationFormVersion: aws.Int32(2),
		Locked:                aws.Bool(false),
		EvaluationFormArn:     aws.String("arn:aws:connect:us-west-2:123456789012:instance/inst-1/evaluation-form/form-1"),
		Title:                 aws.String("Support quality"),
		Status:                types.EvaluationFormVersionStatusActive,
		Items: []types.EvaluationFormItem{
			&types.EvaluationFormItemMemberSection{
				Value: types.EvaluationFormSection{
					Title: aws.String("Opening"),
					RefId: aws.String("s-opening"),
					Items: []types.EvaluationFormItem{
						&types.EvaluationFormItemMemberQuestion{Value: singleSelect},
					},
					Weight: aws.Float64(25),
				},
			},
			&types.EvaluationFormItemMemberQuestion{Value: numeric},
		},
		CreatedTime:      aws.Time(time.Unix(1700000000, 0)),
		CreatedBy:        aws.String("arn:aws:iam::123456789012:user/admin"),
		LastModifiedTime: aws.Time(time.Unix(1700000600, 0)),
		LastModifiedBy:   aws.String("arn:aws:iam::123456789012:user/admin"),
		Tags:             map[string]string{"team": "support"},
	}

	b := marshal(schemas.EvaluationForm, &expect)

	var actual types.EvaluationForm
	if err := core.Unmarshal(json.NewShapeDeserializer(b), &actual); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Errorf("form mismatch (-expect +actual):\n%s\n%s", diff, b)
	}
}

func TestRoutingCriteriaInputStepRoundTrip(t *testing.T) {
	condition := func(name, value string) types.Expression {
		return &types.ExpressionMemberAttributeCondition{
			Value: types.AttributeCondition{
				Name:               aws.String(name),
				Value:              aws.String(value),
				ProficiencyLevel:   aws.Float32(3),
				ComparisonOperator: aws.String("NumberGreaterOrEqualTo"),
			},
		}
	}

	cases := map[string]types.RoutingCriteriaInputStep{
		"attribute condition": {
			Expiry:     &types.RoutingCriteriaInputStepExpiry{DurationInSeconds: aws.Int32(30)},
			Expression: condition("Language", "English"),
		},
		"nested and or": {
			Expression: &types.ExpressionMemberAndExpression{
				Value: []types.Expression{
					condition("Language", "English"),
					&types.ExpressionMemberOrExpression{
						Value: []types.Expression{
							condition("Product", "Billing"),
							condition("Product", "Payments"),
						},
					},
				},
			},
		},
		"empty and": {
			Expression: &types.ExpressionMemberAndExpression{Value: []types.Expression{}},
		},
		"empty or": {
			Expiry:     &types.RoutingCriteriaInputStepExpiry{DurationInSeconds: aws.Int32(5)},
			Expression: &types.ExpressionMemberOrExpression{Value: []types.Expression{}},
		},
	}

	for name, expect := range cases {
		t.Run(name, func(t *testing.T) {
			b := marshal(schemas.RoutingCriteriaInputStep, &expect)

			var actual types.RoutingCriteriaInputStep
			if err := core.Unmarshal(json.NewShapeDeserializer(b), &actual); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(expect, actual); diff != "" {
				t.Errorf("step mismatch (-expect +actual):\n%s\n%s", diff, b)
			}
		})
	}
}

func TestRealtimeContactAnalysisSegmentRoundTrip(t *testing.T) {
	at := &types.RealTimeContactAnalysisTimeDataMemberAbsoluteTime{
		Value: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	cases := map[string]types.RealtimeContactAnalysisSegment{
		"transcript": &types.RealtimeContactAnalysisSegmentMemberTranscript{
			Value: types.RealTimeContactAnalysisSegmentTranscript{
				Id:              aws.String("seg-1"),
				ParticipantId:   aws.String("agent-1"),
				ParticipantRole: types.ParticipantRoleAgent,
				DisplayName:     aws.String("Jordan"),
				Content:         aws.String("Thanks for calling."),
				Time:            at,
			},
		},
		"categories": &types.RealtimeContactAnalysisSegmentMemberCategories{
			Value: types.RealTimeContactAnalysisSegmentCategories{
				MatchedDetails: map[string]types.RealTimeContactAnalysisCategoryDetails{
					"billing": {
						PointsOfInterest: []types.RealTimeContactAnalysisPointOfInterest{
							{
								TranscriptItems: []types.RealTimeContactAnalysisTranscriptItemWithCharacterOffsets{
									{
										Id: aws.String("seg-1"),
										CharacterOffsets: &types.RealTimeContactAnalysisCharacterInterval{
											BeginOffsetChar: aws.Int32(0),
											EndOffsetChar:   aws.Int32(10),
										},
									},
								},
							},
						},
					},
				},
			},
		},
		"event": &types.RealtimeContactAnalysisSegmentMemberEvent{
			Value: types.RealTimeContactAnalysisSegmentEvent{
				Id:        aws.String("seg-2"),
				EventType: aws.String("application/vnd.amazonaws.connect.event.participant.left"),
				Time:      at,
			},
		},
		"post contact summary": &types.RealtimeContactAnalysisSegmentMemberPostContactSummary{
			Value: types.RealTimeContactAnalysisSegmentPostContactSummary{
				Content: aws.String("Customer asked about an invoice."),
				Status:  types.RealTimeContactAnalysisPostContactSummaryStatusCompleted,
			},
		},
	}

	for name, expect := range cases {
		t.Run(name, func(t *testing.T) {
			b := marshal(schemas.RealtimeContactAnalysisSegment, expect)

			actual, err := types.DeserializeRealtimeContactAnalysisSegment(json.NewShapeDeserializer(b))
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(expect, actual); diff != "" {
				t.Errorf("segment mismatch (-expect +actual):\n%s\n%s", diff, b)
			}
		})
	}
}

func TestUnionMoreThanOneMember(t *testing.T) {
	cases := map[string]struct {
		Input     string
		Decode    func(core.ShapeDeserializer) error
		ExpectErr string
	}{
		"expression": {
			Input: `{"Expression":{"AttributeCondition":{"Name":"Language"},"OrExpression":[]}}`,
			Decode: func(d core.ShapeDeserializer) error {
				var v types.RoutingCriteriaInputStep
				return core.Unmarshal(d, &v)
			},
			ExpectErr: "union Expression has more than one member set",
		},
		"evaluation form item": {
			Input: `{"Section":{"Title":"a","RefId":"s","Items":[]},"Question":{"Title":"b","RefId":"q","QuestionType":"TEXT"}}`,
			Decode: func(d core.ShapeDeserializer) error {
				_, err := types.DeserializeEvaluationFormItem(d)
				return err
			},
			ExpectErr: "more than one member set",
		},
		"segment": {
			Input: `{"Event":{"Id":"e","EventType":"x"},"PostContactSummary":{"Status":"FAILED"}}`,
			Decode: func(d core.ShapeDeserializer) error {
				_, err := types.DeserializeRealtimeContactAnalysisSegment(d)
				return err
			},
			ExpectErr: "union RealtimeContactAnalysisSegment has more than one member set",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.Decode(json.NewShapeDeserializer([]byte(c.Input)))
			if err == nil {
				t.Fatalf("expect error, got none")
			}
			if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect error to contain %q, got %q", e, a)
			}
		})
	}
}

func TestUnionUnknownMember(t *testing.T) {
	var step types.RoutingCriteriaInputStep
	input := `{"Expiry":{"DurationInSeconds":10},"Expression":{"ProficiencyRange":{"Min":1}}}`
	if err := core.Unmarshal(json.NewShapeDeserializer([]byte(input)), &step); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if step.Expression != nil {
		t.Errorf("expect unknown variant to be absent, got %#v", step.Expression)
	}
	if e, a := int32(10), aws.ToInt32(step.Expiry.DurationInSeconds); e != a {
		t.Errorf("expect expiry %v, got %v", e, a)
	}

	seg, err := types.DeserializeRealtimeContactAnalysisSegment(json.NewShapeDeserializer([]byte(`{"Attachments":{"Id":"a"}}`)))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if seg != nil {
		t.Errorf("expect unknown variant to be absent, got %#v", seg)
	}
}
