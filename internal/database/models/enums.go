package models

// Visibility defines whether a subtitle version is shown to the public
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// IsValid checks if the Visibility is valid
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate:
		return true
	}
	return false
}

// VisibilityOverride forces a visibility regardless of the computed one.
// The empty value means no override.
type VisibilityOverride string

const (
	VisibilityOverrideNone    VisibilityOverride = ""
	VisibilityOverridePublic  VisibilityOverride = "public"
	VisibilityOverridePrivate VisibilityOverride = "private"
)

// IsValid checks if the VisibilityOverride is valid
func (v VisibilityOverride) IsValid() bool {
	switch v {
	case VisibilityOverrideNone, VisibilityOverridePublic, VisibilityOverridePrivate:
		return true
	}
	return false
}

// WorkflowOrigin records which kind of task was open when a version was first created
type WorkflowOrigin string

const (
	WorkflowOriginNone       WorkflowOrigin = ""
	WorkflowOriginTranscribe WorkflowOrigin = "transcribe"
	WorkflowOriginTranslate  WorkflowOrigin = "translate"
	WorkflowOriginReview     WorkflowOrigin = "review"
	WorkflowOriginApprove    WorkflowOrigin = "approve"
)

// TaskType identifies the kind of a team task. The numeric ids are persisted.
type TaskType int

const (
	TaskTypeSubtitle  TaskType = 10
	TaskTypeTranslate TaskType = 20
	TaskTypeReview    TaskType = 30
	TaskTypeApprove   TaskType = 40
)

var taskTypeNames = map[TaskType]string{
	TaskTypeSubtitle:  "Subtitle",
	TaskTypeTranslate: "Translate",
	TaskTypeReview:    "Review",
	TaskTypeApprove:   "Approve",
}

// String returns the display name of the task type
func (t TaskType) String() string {
	if name, ok := taskTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsValid checks if the TaskType is valid
func (t TaskType) IsValid() bool {
	_, ok := taskTypeNames[t]
	return ok
}

// WorkflowOrigin maps an open task type to the origin recorded on new versions
func (t TaskType) WorkflowOrigin() WorkflowOrigin {
	switch t {
	case TaskTypeSubtitle:
		return WorkflowOriginTranscribe
	case TaskTypeTranslate:
		return WorkflowOriginTranslate
	case TaskTypeReview:
		return WorkflowOriginReview
	case TaskTypeApprove:
		return WorkflowOriginApprove
	}
	return WorkflowOriginNone
}

// MemberRole defines the role of a user inside a team
type MemberRole string

const (
	MemberRoleOwner       MemberRole = "owner"
	MemberRoleAdmin       MemberRole = "admin"
	MemberRoleManager     MemberRole = "manager"
	MemberRoleContributor MemberRole = "contributor"
)

var memberRoleRanks = map[MemberRole]int{
	MemberRoleContributor: 1,
	MemberRoleManager:     2,
	MemberRoleAdmin:       3,
	MemberRoleOwner:       4,
}

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	_, ok := memberRoleRanks[r]
	return ok
}

// AtLeast reports whether r ranks the same or higher than other
func (r MemberRole) AtLeast(other MemberRole) bool {
	return memberRoleRanks[r] >= memberRoleRanks[other] && memberRoleRanks[r] > 0
}

// ModerationLevel is the minimum role allowed to review or approve in a workflow.
// ModerationNone disables the step entirely.
type ModerationLevel int

const (
	ModerationNone    ModerationLevel = 0
	ModerationPeer    ModerationLevel = 10
	ModerationManager ModerationLevel = 20
	ModerationAdmin   ModerationLevel = 30
)

// IsValid checks if the ModerationLevel is valid
func (l ModerationLevel) IsValid() bool {
	switch l {
	case ModerationNone, ModerationPeer, ModerationManager, ModerationAdmin:
		return true
	}
	return false
}

// Permits reports whether a member with the given role satisfies the level
func (l ModerationLevel) Permits(role MemberRole) bool {
	switch l {
	case ModerationPeer:
		return role.IsValid()
	case ModerationManager:
		return role.AtLeast(MemberRoleManager)
	case ModerationAdmin:
		return role.AtLeast(MemberRoleAdmin)
	}
	return false
}
