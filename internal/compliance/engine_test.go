package compliance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NurseryService/internal/domain"
)

func member(level domain.QualificationLevel, pfa bool) domain.StaffMember {
	return domain.StaffMember{QualificationLevel: level, IsPFAHolder: pfa}
}

func roster(pfa bool, levels ...domain.QualificationLevel) []domain.StaffMember {
	staff := make([]domain.StaffMember, 0, len(levels))
	for i, level := range levels {
		staff = append(staff, member(level, pfa && i == 0))
	}
	return staff
}

func repeat(level domain.QualificationLevel, n int) []domain.QualificationLevel {
	levels := make([]domain.QualificationLevel, n)
	for i := range levels {
		levels[i] = level
	}
	return levels
}

func counts(under2, twoToThree, threePlus int) domain.ChildCount {
	return domain.ChildCount{
		domain.AgeBandUnder2:     under2,
		domain.AgeBandTwoToThree: twoToThree,
		domain.AgeBandThreePlus:  threePlus,
	}
}

func assertAvailability(t *testing.T, result domain.ComplianceResult, c domain.ChildCount) {
	t.Helper()
	for _, band := range domain.AllAgeBands {
		assert.Equal(t, max(0, result.MaxCapacity[band]-c[band]), result.Available[band], "band %s", band)
	}
}

func TestEvaluate_SingleLevel3WithPFA(t *testing.T) {
	c := counts(2, 0, 0)
	result := Evaluate(roster(true, domain.QualificationLevel3Approved), c)

	assert.True(t, result.PFACompliant)
	assert.True(t, result.EYFSCompliant)
	assert.True(t, result.Compliant)
	assert.Equal(t, 3, result.MaxCapacity[domain.AgeBandUnder2])
	assert.Equal(t, 1, result.Available[domain.AgeBandUnder2])
	assert.Equal(t, 4, result.MaxCapacity[domain.AgeBandTwoToThree])
	assert.Equal(t, 8, result.MaxCapacity[domain.AgeBandThreePlus])
	assert.False(t, result.HasIssues())
}

func TestEvaluate_EmptyRoster(t *testing.T) {
	result := Evaluate(nil, counts(0, 0, 0))

	assert.False(t, result.PFACompliant)
	assert.False(t, result.EYFSCompliant)
	assert.False(t, result.Compliant)
	for _, band := range domain.AllAgeBands {
		assert.Equal(t, 0, result.MaxCapacity[band])
		assert.Equal(t, 0, result.Available[band])
		assert.Equal(t, []string{domain.IssueNoPFAHolder}, result.QualificationIssues[band])
	}
}

func TestEvaluate_TwoLevel2OnlyReportsMissingLevel3(t *testing.T) {
	staff := []domain.StaffMember{
		member(domain.QualificationLevel2Approved, true),
		member(domain.QualificationLevel2Approved, false),
	}

	result := Evaluate(staff, counts(0, 0, 0))

	assert.True(t, result.PFACompliant)
	assert.True(t, result.EYFSCompliant)
	assert.True(t, result.Compliant)
	for _, band := range domain.AllAgeBands {
		assert.Equal(t, 0, result.MaxCapacity[band])
		assert.Equal(t, []string{domain.IssueNoLevel3Staff}, result.QualificationIssues[band])
	}
}

func TestEvaluate_QTSUnlocksThreePlusRatio(t *testing.T) {
	levels := []domain.QualificationLevel{domain.QualificationLevel3Approved, domain.QualificationQTS}
	levels = append(levels, repeat(domain.QualificationLevel2Approved, 4)...)
	levels = append(levels, repeat(domain.QualificationUnqualified, 4)...)
	c := counts(0, 0, 50)

	result := Evaluate(roster(true, levels...), c)

	require.Len(t, levels, 10)
	assert.Equal(t, 130, result.MaxCapacity[domain.AgeBandThreePlus])
	assert.Equal(t, 80, result.Available[domain.AgeBandThreePlus])
	assert.True(t, result.EYFSCompliant)
	assert.Empty(t, result.QualificationIssues[domain.AgeBandThreePlus])
	// 4 < 10/2: младшие группы недоступны
	assert.Equal(t, 0, result.MaxCapacity[domain.AgeBandUnder2])
	assert.Equal(t, []string{domain.IssueInsufficientLevel2Staff}, result.QualificationIssues[domain.AgeBandUnder2])
}

func TestEvaluate_NoPFAHolder(t *testing.T) {
	rosters := map[string][]domain.StaffMember{
		"single level 3": roster(false, domain.QualificationLevel3Approved),
		"qts and level 2": roster(false,
			domain.QualificationQTS, domain.QualificationLevel3Approved, domain.QualificationLevel2Approved),
		"large roster": roster(false, repeat(domain.QualificationLevel3Approved, 12)...),
	}

	for name, staff := range rosters {
		t.Run(name, func(t *testing.T) {
			result := Evaluate(staff, counts(1, 2, 3))

			assert.False(t, result.PFACompliant)
			assert.False(t, result.Compliant)
			for _, band := range domain.AllAgeBands {
				assert.Equal(t, 0, result.MaxCapacity[band])
				assert.Equal(t, 0, result.Available[band])
				require.NotEmpty(t, result.QualificationIssues[band])
				assert.Equal(t, domain.IssueNoPFAHolder, result.QualificationIssues[band][0])
			}
		})
	}
}

func TestEvaluate_AvailabilityInvariant(t *testing.T) {
	rosters := [][]domain.StaffMember{
		nil,
		roster(true, domain.QualificationLevel3Approved),
		roster(true, domain.QualificationLevel3Approved, domain.QualificationQTS),
		roster(true, domain.QualificationUnqualified, domain.QualificationUnqualified, domain.QualificationUnqualified),
		roster(true, append(repeat(domain.QualificationLevel3Approved, 2), repeat(domain.QualificationLevel2Approved, 3)...)...),
	}
	childCounts := []domain.ChildCount{
		counts(0, 0, 0),
		counts(3, 4, 8),
		counts(50, 50, 50),
		counts(1, 0, 9),
		{},
	}

	for i, staff := range rosters {
		for j, c := range childCounts {
			t.Run(fmt.Sprintf("roster_%d_counts_%d", i, j), func(t *testing.T) {
				result := Evaluate(staff, c)
				assertAvailability(t, result, c)
				for _, band := range domain.AllAgeBands {
					assert.GreaterOrEqual(t, result.Available[band], 0)
				}
				assert.Equal(t, result.PFACompliant && result.EYFSCompliant, result.Compliant)
			})
		}
	}
}

func TestEvaluate_Monotonicity(t *testing.T) {
	// Повышение квалификации одного сотрудника при неизменном размере смены
	// не уменьшает вместимость ни одной группы
	base := []domain.QualificationLevel{
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
	}
	upgrades := []domain.QualificationLevel{
		domain.QualificationLevel3Approved,
		domain.QualificationLevel2Approved,
	}

	for n := 0; n < len(base); n++ {
		for _, upgrade := range upgrades {
			before := append([]domain.QualificationLevel(nil), base...)
			after := append([]domain.QualificationLevel(nil), base...)
			for k := 0; k < n; k++ {
				before[k] = domain.QualificationLevel3Approved
				after[k] = domain.QualificationLevel3Approved
			}
			after[n] = upgrade

			prev := Evaluate(roster(true, before...), counts(0, 0, 0))
			next := Evaluate(roster(true, after...), counts(0, 0, 0))
			for _, band := range domain.AllAgeBands {
				assert.GreaterOrEqual(t, next.MaxCapacity[band], prev.MaxCapacity[band],
					"band %s, %d level 3 plus %s", band, n, upgrade)
			}
		}
	}
}

func TestEvaluate_FloorTieBreak(t *testing.T) {
	// Смена из 3: нужно effectiveLevel2 >= 1, а не >= 2
	staff := roster(true,
		domain.QualificationLevel3Approved,
		domain.QualificationLevel2Approved,
		domain.QualificationUnqualified,
	)

	result := Evaluate(staff, counts(0, 0, 0))

	assert.Equal(t, 9, result.MaxCapacity[domain.AgeBandUnder2])
	assert.Equal(t, 12, result.MaxCapacity[domain.AgeBandTwoToThree])
	assert.Equal(t, 24, result.MaxCapacity[domain.AgeBandThreePlus])
	assert.False(t, result.HasIssues())
}

func TestEvaluate_StudentLevel3CountsAsLevel2(t *testing.T) {
	staff := roster(true,
		domain.QualificationLevel3Approved,
		domain.QualificationStudentLevel3,
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
	)

	result := Evaluate(staff, counts(0, 0, 0))

	assert.Equal(t, 0, result.MaxCapacity[domain.AgeBandUnder2])

	staff[2] = member(domain.QualificationStudentLevel3, false)
	result = Evaluate(staff, counts(0, 0, 0))

	assert.Equal(t, 12, result.MaxCapacity[domain.AgeBandUnder2])
	assert.Equal(t, 16, result.MaxCapacity[domain.AgeBandTwoToThree])
	assert.Equal(t, 32, result.MaxCapacity[domain.AgeBandThreePlus])
}

func TestEvaluate_StudentLevel2DoesNotCountAsLevel2(t *testing.T) {
	staff := roster(true,
		domain.QualificationLevel3Approved,
		domain.QualificationStudentLevel2,
		domain.QualificationStudentLevel2,
		domain.QualificationStudentLevel2,
	)

	result := Evaluate(staff, counts(0, 0, 0))

	for _, band := range domain.AllAgeBands {
		assert.Equal(t, 0, result.MaxCapacity[band])
		assert.Equal(t, []string{domain.IssueInsufficientLevel2Staff}, result.QualificationIssues[band])
	}
}

func TestEvaluate_QTSSuppressesLevel2IssueForThreePlusOnly(t *testing.T) {
	staff := roster(true,
		domain.QualificationQTS,
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
		domain.QualificationUnqualified,
	)

	result := Evaluate(staff, counts(0, 0, 0))

	assert.Equal(t, 0, result.MaxCapacity[domain.AgeBandThreePlus])
	assert.Equal(t, []string{domain.IssueNoLevel3Staff}, result.QualificationIssues[domain.AgeBandThreePlus])
	assert.Equal(t,
		[]string{domain.IssueNoLevel3Staff, domain.IssueInsufficientLevel2Staff},
		result.QualificationIssues[domain.AgeBandUnder2],
	)
	assert.Equal(t,
		[]string{domain.IssueNoLevel3Staff, domain.IssueInsufficientLevel2Staff},
		result.QualificationIssues[domain.AgeBandTwoToThree],
	)
}

func TestEvaluate_UnknownLevelCountsTowardRosterOnly(t *testing.T) {
	staff := []domain.StaffMember{
		member(domain.QualificationLevel3Approved, true),
		member(domain.QualificationLevel("Level 4 Diploma"), false),
		member(domain.QualificationLevel("Level 4 Diploma"), false),
	}

	result := Evaluate(staff, counts(0, 0, 0))

	// 0 < 3/2: неизвестный уровень не засчитывается как Level 2
	assert.Equal(t, 0, result.MaxCapacity[domain.AgeBandUnder2])
	assert.Equal(t, []string{domain.IssueInsufficientLevel2Staff}, result.QualificationIssues[domain.AgeBandUnder2])

	summary := Summarize(staff)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Level3)
	assert.Equal(t, 0, summary.Unqualified)
}

func TestEvaluate_OverCapacity(t *testing.T) {
	c := counts(4, 0, 0)
	result := Evaluate(roster(true, domain.QualificationLevel3Approved), c)

	assert.True(t, result.PFACompliant)
	assert.False(t, result.EYFSCompliant)
	assert.False(t, result.Compliant)
	assert.Equal(t, 0, result.Available[domain.AgeBandUnder2])
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	staff := roster(true, domain.QualificationLevel3Approved, domain.QualificationLevel2Approved)
	c := counts(1, 1, 1)
	snapshot := append([]domain.StaffMember(nil), staff...)

	first := Evaluate(staff, c)
	second := Evaluate(staff, c)

	assert.Equal(t, snapshot, staff)
	assert.Equal(t, counts(1, 1, 1), c)
	assert.Equal(t, first, second)
}

func TestCanAdmit(t *testing.T) {
	staff := roster(true, domain.QualificationLevel3Approved)

	assert.True(t, CanAdmit(Evaluate(staff, counts(2, 0, 0)), domain.AgeBandUnder2))
	assert.False(t, CanAdmit(Evaluate(staff, counts(3, 0, 0)), domain.AgeBandUnder2))
	assert.True(t, CanAdmit(Evaluate(staff, counts(3, 0, 0)), domain.AgeBandThreePlus))
	assert.False(t, CanAdmit(Evaluate(roster(false, domain.QualificationQTS), counts(0, 0, 0)), domain.AgeBandThreePlus))
}

func TestSummary_EffectiveLevels(t *testing.T) {
	summary := Summarize(roster(true,
		domain.QualificationLevel2Approved,
		domain.QualificationStudentLevel3,
		domain.QualificationStudentLevel2,
		domain.QualificationStudentLevel2,
	))

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.PFAHolders)
	assert.Equal(t, 2, summary.EffectiveLevel2())
	assert.Equal(t, 2, summary.EffectiveLevel1())
	assert.True(t, summary.EnoughLevel2())
}
