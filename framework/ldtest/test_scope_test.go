package ldtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestScopeInheritsContext(t *testing.T) {
	myContextValue := "hi"
	config := TestConfiguration{
		Context: myContextValue,
	}
	_ = Run(config, func(ldt *T) {
		assert.Equal(t, myContextValue, ldt.Context())

		ldt.Run("subtest", func(ldt1 *T) {
			assert.Equal(t, myContextValue, ldt1.Context())
		})
	})
}

func TestTestScopeExitsImmediatelyOnFailNow(t *testing.T) {
	executed1 := false
	executed2 := false
	executed3 := false
	_ = Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("", func(ldt *T) {
			executed1 = true
			ldt.FailNow()
			executed2 = true
		})
		executed3 = true
	})
	assert.True(t, executed1)
	assert.False(t, executed2)
	assert.True(t, executed3)
}

func TestTestScopeExitsImmediatelyOnSkip(t *testing.T) {
	executed1 := false
	executed2 := false
	executed3 := false
	_ = Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("", func(ldt *T) {
			executed1 = true
			ldt.Skip()
			executed2 = true
		})
		executed3 = true
	})
	assert.True(t, executed1)
	assert.False(t, executed2)
	assert.True(t, executed3)
}

func TestTestScopePassedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("parent", func(ldt0 *T) {
			ldt0.Run("subtest1", func(ldt1 *T) {
				// this test passes
			})
			ldt0.Run("subtest2", func(ldt2 *T) {
				// this test passes
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"parent", "subtest1"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"parent", "subtest2"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)

	assert.Equal(t, TestID{"parent"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 0)

	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestTestScopeFailedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("parent", func(ldt0 *T) {
			ldt0.Run("subtest1", func(ldt1 *T) {
				// this test passes
			})
			ldt0.Run("subtest2", func(ldt2 *T) {
				ldt2.Errorf("failed because %s", "reasons")
				ldt2.Errorf("and failed some more")
			})
			ldt0.Errorf("and parent failed")
		})
	})

	assert.False(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 2)

	assert.Equal(t, TestID{"parent", "subtest1"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"parent", "subtest2"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 2)
	assert.Equal(t, "failed because reasons", result.Tests[1].Errors[0].Error())
	assert.Equal(t, "and failed some more", result.Tests[1].Errors[1].Error())

	assert.Equal(t, TestID{"parent"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 1)
	assert.Equal(t, "and parent failed", result.Tests[2].Errors[0].Error())

	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestTestScopeSkippedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("parent", func(ldt0 *T) {
			ldt0.Run("subtest1", func(ldt1 *T) {
				ldt1.Skip()
			})
			ldt0.Run("subtest2", func(ldt2 *T) {
				ldt2.SkipWithReason("why not")
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 2)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"parent"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Nil(t, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)
}

func TestTestScopeFilter(t *testing.T) {
	filter := FilterFunc(func(id TestID) bool {
		return len(id) == 0 || id[0] == "b"
	})

	result := Run(TestConfiguration{Filter: filter}, func(ldt *T) {
		ldt.Run("a", func(ldt0 *T) {
			ldt0.Run("sub1a", func(ldt1 *T) {})
			ldt0.Run("sub2a", func(ldt1 *T) {})
		})
		ldt.Run("b", func(ldt0 *T) {
			ldt0.Run("sub1b", func(ldt1 *T) {})
			ldt0.Run("sub2b", func(ldt1 *T) {})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"b", "sub1b"}, result.Tests[0].TestID)
	assert.Equal(t, TestID{"b", "sub2b"}, result.Tests[1].TestID)
	assert.Equal(t, TestID{"b"}, result.Tests[2].TestID)
	assert.Equal(t, TestID(nil), result.Tests[3].TestID)
}

func TestTestScopeReportEntries(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("GET Users", func(ldt1 *T) {
			ldt1.Describe("Test to get list of users")
			ldt1.Info("Sending GET request to %s", "http://x/users")
			ldt1.Pass("Status code is %d", 200)
			ldt1.Errorf("Content-Type was %q", "text/plain")
		})
	})

	require.Len(t, result.Tests, 2)
	r := result.Tests[0]
	assert.Equal(t, "Test to get list of users", r.Description)
	require.Len(t, r.Entries, 3)
	assert.Equal(t, EntryInfo, r.Entries[0].Status)
	assert.Equal(t, "Sending GET request to http://x/users", r.Entries[0].Message)
	assert.Equal(t, EntryPass, r.Entries[1].Status)
	assert.Equal(t, "Status code is 200", r.Entries[1].Message)
	assert.Equal(t, EntryFail, r.Entries[2].Status)
	assert.Equal(t, `Content-Type was "text/plain"`, r.Entries[2].Message)
	assert.Equal(t, EntryFail, r.Status())
	assert.NotEmpty(t, result.RunID)
}

func TestTestScopeNonCriticalFailure(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("parent", func(ldt0 *T) {
			ldt0.Run("optional", func(ldt1 *T) {
				ldt1.NonCritical("known difference")
				ldt1.Errorf("nope")
			})
		})
	})

	assert.True(t, result.OK())
	require.Len(t, result.NonCriticalFailures, 1)
	assert.Equal(t, "known difference", result.NonCriticalFailures[0].Explanation)
	assert.Equal(t, EntryWarning, result.NonCriticalFailures[0].Status())
	assert.Equal(t, EntryWarning, result.StatusOf(TestID{"parent"}))
}

func TestTestScopeStatusOfIncludesSubtests(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("a", func(ldt0 *T) {
			ldt0.Run("ok", func(*T) {})
		})
		ldt.Run("b", func(ldt0 *T) {
			ldt0.Run("bad", func(ldt1 *T) { ldt1.FailNow() })
		})
	})

	assert.Equal(t, EntryPass, result.StatusOf(TestID{"a"}))
	assert.Equal(t, EntryFail, result.StatusOf(TestID{"b"}))
}

func TestTestScopeRecoversFromPanic(t *testing.T) {
	result := Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("panics", func(*T) {
			panic("boom")
		})
	})

	require.Len(t, result.Failures, 1)
	require.Len(t, result.Failures[0].Errors, 1)
	assert.Contains(t, result.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestTestScopeDeferredCleanupsRunInReverseOrder(t *testing.T) {
	var calls []string
	_ = Run(TestConfiguration{}, func(ldt *T) {
		ldt.Run("x", func(ldt1 *T) {
			ldt1.Defer(func() { calls = append(calls, "first") })
			ldt1.Defer(func() { calls = append(calls, "second") })
			ldt1.FailNow()
		})
	})
	assert.Equal(t, []string{"second", "first"}, calls)
}
