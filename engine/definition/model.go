// Package definition models the workflow definition object graph the
// narration pipeline reads. Everything here is a read-only view over parsed
// input; optional fields simply stay zero when absent.
package definition

// -----------------------------------------------------------------------------
// Definition
// -----------------------------------------------------------------------------

// Definition is the root of one workflow definition: an ordered list of
// stages, the top-level creation-form parameters, and auxiliary object type
// declarations. The tree is read-only for the whole narration pass; nothing
// downstream mutates it.
type Definition struct {
	Name        string       `json:"name"`
	Code        string       `json:"code,omitempty"`
	Stages      []Stage      `json:"stages,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	ObjectTypes []ObjectType `json:"objectTypes,omitempty"`
}

type Stage struct {
	ID        FlexID `json:"id,omitempty"`
	Name      string `json:"name"`
	OrderTree int    `json:"orderTree,omitempty"`
	Tasks     []Task `json:"tasks,omitempty"`
}

type Task struct {
	ID                  FlexID           `json:"id"`
	Name                string           `json:"name"`
	OrderTree           int              `json:"orderTree,omitempty"`
	Parameters          []Parameter      `json:"parameters,omitempty"`
	PrerequisiteTaskIDs []FlexID         `json:"prerequisiteTaskIds,omitempty"`
	ExecutorLock        *ExecutorLock    `json:"executorLock,omitempty"`
	Automations         []AutomationRule `json:"automations,omitempty"`
}

// ExecutorLock ties or forbids two tasks being completed by the same actor.
// Both halves are independent and may coexist on one task.
type ExecutorLock struct {
	SameAsTaskID     FlexID   `json:"sameAsTaskId,omitempty"`
	NotSameAsTaskIDs []FlexID `json:"notSameAsTaskIds,omitempty"`
}

func (e *ExecutorLock) IsZero() bool {
	return e == nil || (e.SameAsTaskID.IsZero() && len(e.NotSameAsTaskIDs) == 0)
}

// -----------------------------------------------------------------------------
// Parameter
// -----------------------------------------------------------------------------

type VerificationType string

const (
	VerificationNone VerificationType = "NONE"
	VerificationSelf VerificationType = "SELF"
	VerificationPeer VerificationType = "PEER"
	VerificationBoth VerificationType = "BOTH"
)

// Parameter is one data-capture field of a task (or of the creation form).
// Data carries the type-dependent payload in whatever shape the source used;
// Payload() resolves it into a tagged variant exactly once per call site.
type Parameter struct {
	ID              FlexID            `json:"id"`
	Label           string            `json:"label"`
	Type            string            `json:"type"`
	Mandatory       bool              `json:"mandatory"`
	Verification    VerificationType  `json:"verificationType,omitempty"`
	Data            any               `json:"data,omitempty"`
	Validations     []ValidationGroup `json:"validations,omitempty"`
	Rules           []Rule            `json:"rules,omitempty"`
	AutoInitialized bool              `json:"autoInitialized,omitempty"`
}

func (p *Parameter) SelfVerified() bool {
	return p.Verification == VerificationSelf || p.Verification == VerificationBoth
}

func (p *Parameter) PeerVerified() bool {
	return p.Verification == VerificationPeer || p.Verification == VerificationBoth
}

// Option is one selectable choice of a parameter or object property. Display
// text precedence is Name > Label > DisplayName > raw identifier.
type Option struct {
	ID          FlexID `json:"id"`
	Name        string `json:"name,omitempty"`
	Label       string `json:"label,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Value       FlexID `json:"value,omitempty"`
}

func (o *Option) DisplayText() string {
	switch {
	case o.Name != "":
		return o.Name
	case o.Label != "":
		return o.Label
	case o.DisplayName != "":
		return o.DisplayName
	default:
		return o.ID.String()
	}
}

// Rule declares conditional visibility: when the owning parameter takes one
// of the Input values, the parameters listed under Show become visible.
type Rule struct {
	ID    FlexID     `json:"id,omitempty"`
	Input []any      `json:"input,omitempty"`
	Show  RuleTarget `json:"show,omitempty"`
	Hide  RuleTarget `json:"hide,omitempty"`
}

type RuleTarget struct {
	Parameters []FlexID `json:"parameters,omitempty"`
}

// -----------------------------------------------------------------------------
// Validations
// -----------------------------------------------------------------------------

// ValidationGroup bundles the typed validation lists a parameter declares,
// all sharing one exception severity.
type ValidationGroup struct {
	ExceptionApprovalType string           `json:"exceptionApprovalType,omitempty"`
	DateTimeValidations   []ValidationItem `json:"dateTimeParameterValidations,omitempty"`
	CriteriaValidations   []ValidationItem `json:"criteriaValidations,omitempty"`
	PropertyValidations   []ValidationItem `json:"propertyValidations,omitempty"`
	ResourceValidations   []ValidationItem `json:"resourceParameterValidations,omitempty"`
	RelationValidations   []ValidationItem `json:"relationPropertyValidations,omitempty"`
	CustomValidation      any              `json:"customValidation,omitempty"`
}

type ValidationItem struct {
	Constraint            string   `json:"constraint,omitempty"`
	Selector              string   `json:"selector,omitempty"`
	Value                 any      `json:"value,omitempty"`
	DateUnit              string   `json:"dateUnit,omitempty"`
	ErrorMessage          string   `json:"errorMessage,omitempty"`
	MinValue              *float64 `json:"minValue,omitempty"`
	MaxValue              *float64 `json:"maxValue,omitempty"`
	ReferencedParameterID FlexID   `json:"referencedParameterId,omitempty"`
	PropertyID            FlexID   `json:"propertyId,omitempty"`
	PropertyDisplayName   string   `json:"propertyDisplayName,omitempty"`
	ParameterLabel        string   `json:"parameterLabel,omitempty"`
	Options               []Option `json:"options,omitempty"`
}

// -----------------------------------------------------------------------------
// Object types
// -----------------------------------------------------------------------------

// ObjectType declares an external resource collection and its properties,
// referenced by resource parameters and automation actions.
type ObjectType struct {
	ID          FlexID     `json:"id,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
	Relations   []Property `json:"relations,omitempty"`
}

type Property struct {
	ID          FlexID   `json:"id"`
	DisplayName string   `json:"displayName,omitempty"`
	ExternalID  string   `json:"externalId,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Choices     []Option `json:"choices,omitempty"`
}

func (p *Property) DisplayText() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.ExternalID
}

// -----------------------------------------------------------------------------
// Automation
// -----------------------------------------------------------------------------

type AutomationRule struct {
	TriggerType   string        `json:"triggerType,omitempty"`
	ActionType    string        `json:"actionType,omitempty"`
	DisplayName   string        `json:"displayName,omitempty"`
	ActionDetails ActionDetails `json:"actionDetails,omitempty"`
}

type ActionDetails struct {
	ObjectTypeDisplayName string         `json:"objectTypeDisplayName,omitempty"`
	ReferencedParameterID FlexID         `json:"referencedParameterId,omitempty"`
	Configuration         []FieldMapping `json:"configuration,omitempty"`
}

type FieldMapping struct {
	Label       string `json:"label,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	ParameterID FlexID `json:"parameterId,omitempty"`
	PropertyID  FlexID `json:"propertyId,omitempty"`
}
