package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/kicad-dblib/internal/model"
	"github.com/you-humble/kicad-dblib/internal/service/catalog/mocks"
	"github.com/you-humble/kicad-dblib/internal/workflow"
)

const (
	testReadTimeout  = time.Second
	testWriteTimeout = time.Second
)

type deps struct {
	repository *mocks.MockCatalogRepository
	producer   *mocks.MockChangeProducer
	refreshes  *atomic.Int32
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockCatalogRepository(t),
		producer:   mocks.NewMockChangeProducer(t),
		refreshes:  new(atomic.Int32),
	}
}

func newSvc(d deps) *service {
	refresher := workflow.RefreshFunc(func(context.Context) error {
		d.refreshes.Add(1)
		return nil
	})
	return NewCatalogService(d.repository, d.producer, refresher, testReadTimeout, testWriteTimeout)
}

func fakePart(key string) model.Part {
	return model.Part{
		Description:            gofakeit.ProductName(),
		Datasheet:              gofakeit.URL(),
		FootprintRef:           "db_footprints:" + gofakeit.Word(),
		SymbolRef:              "db_library:" + gofakeit.Word(),
		ModelRef:               gofakeit.Word(),
		KicadPartNumber:        key,
		ManufacturerPartNumber: "MFR-" + gofakeit.DigitN(4),
		Manufacturer:           gofakeit.Company(),
		ManufacturerPartURL:    gofakeit.URL(),
		Note:                   gofakeit.Word(),
		Value:                  gofakeit.DigitN(2) + "k",
		ComponentType:          model.ComponentResistor,
	}
}

func TestServiceAddPartDialog(t *testing.T) {
	t.Parallel()

	partID := uuid.New()

	type testCase struct {
		name   string
		values func() model.Part
		setup  func(d deps)
		assert func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: blank key never reaches repository",
			values: func() model.Part {
				p := fakePart("   ")
				return p
			},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.EqualError(t, err, "KiCad Part Number is required.")

				assert.Equal(t, workflow.StateOpen, dlg.State())
				assert.Equal(t, workflow.StateRejected, dlg.Last())
				assert.Zero(t, d.refreshes.Load())
				d.repository.AssertNotCalled(t, "AddPart", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: first failing field only",
			values: func() model.Part {
				p := fakePart("R001")
				p.FootprintRef = ""
				p.SymbolRef = ""
				return p
			},
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps) {
				require.Error(t, err)
				assert.EqualError(t, err, "Footprint Ref is required.")
				assert.False(t, dlg.Closed())
			},
		},
		{
			name: "repository error: dialog stays open",
			values: func() model.Part {
				return fakePart("R001")
			},
			setup: func(d deps) {
				d.repository.
					On("AddPart", mock.Anything, mock.AnythingOfType("model.Part")).
					Return(uuid.Nil, errors.New("connection refused")).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPersistence)
				assert.ErrorContains(t, err, "connection refused")

				assert.Equal(t, workflow.StateOpen, dlg.State())
				assert.Equal(t, workflow.StatePersistFailed, dlg.Last())
				assert.Zero(t, d.refreshes.Load())
				d.producer.AssertNotCalled(t, "SendCatalogChanged", mock.Anything, mock.Anything)
			},
		},
		{
			name: "success: persists, notifies, refreshes and closes",
			values: func() model.Part {
				return fakePart("R001")
			},
			setup: func(d deps) {
				d.repository.
					On("AddPart", mock.Anything, mock.MatchedBy(func(p model.Part) bool {
						return p.KicadPartNumber == "R001"
					})).
					Return(partID, nil).
					Once()
				d.producer.
					On("SendCatalogChanged", mock.Anything, mock.MatchedBy(func(e model.ChangeEvent) bool {
						return e.Entity == model.EntityPart &&
							e.Action == model.ActionCreated &&
							e.Key == "R001" &&
							e.ID == partID &&
							e.EventID != uuid.Nil
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps) {
				require.NoError(t, err)
				assert.True(t, dlg.Closed())
				assert.True(t, dlg.Persisted())
				assert.Equal(t, partID, dlg.Values().ID)
				assert.EqualValues(t, 1, d.refreshes.Load())
			},
		},
		{
			name: "success: producer failure does not fail the submission",
			values: func() model.Part {
				return fakePart("R002")
			},
			setup: func(d deps) {
				d.repository.
					On("AddPart", mock.Anything, mock.Anything).
					Return(partID, nil).
					Once()
				d.producer.
					On("SendCatalogChanged", mock.Anything, mock.Anything).
					Return(errors.New("broker down")).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Part], err error, d deps) {
				require.NoError(t, err)
				assert.True(t, dlg.Closed())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			dlg := newSvc(d).NewAddPartDialog()
			err := dlg.Submit(context.Background(), tt.values())
			tt.assert(t, dlg, err, d)
		})
	}
}

func TestServiceAddPartDialogDefaults(t *testing.T) {
	t.Parallel()

	dlg := newSvc(newDeps(t)).NewAddPartDialog()

	assert.Equal(t, workflow.KindAddPart, dlg.Kind())
	assert.Equal(t, model.DefaultFootprintRef, dlg.Values().FootprintRef)
	assert.Equal(t, model.DefaultSymbolRef, dlg.Values().SymbolRef)
	assert.Empty(t, dlg.Values().KicadPartNumber)
	require.NotEmpty(t, dlg.Fields())
	assert.Equal(t, "Component Type", dlg.Fields()[len(dlg.Fields())-1].Label)
}

func TestServiceAddModuleDialogDefaults(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.On("PartKeys", mock.Anything).Return([]model.PartKey{}, nil).Once()

	dlg, _, err := newSvc(d).NewAddModuleDialog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, workflow.KindAddModule, dlg.Kind())
	assert.Equal(t, model.DefaultFootprintRef, dlg.Defaults().FootprintRef)
	assert.Equal(t, model.DefaultSymbolRef, dlg.Defaults().SymbolRef)
	assert.Equal(t, dlg.Defaults(), dlg.Values())
	assert.Empty(t, dlg.Values().KicadPartNumber)
	assert.Empty(t, dlg.Values().Parts)
}

func TestServiceEditPartDialog(t *testing.T) {
	t.Parallel()

	stored := fakePart("R001")
	stored.ID = uuid.New()

	t.Run("not found: no dialog is opened", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.
			On("PartByKey", mock.Anything, "R404").
			Return((*model.Part)(nil), model.ErrPartNotFound).
			Once()

		dlg, err := newSvc(d).NewEditPartDialog(context.Background(), "R404")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPartNotFound)
		assert.NotErrorIs(t, err, model.ErrPersistence)
		assert.Nil(t, dlg)
	})

	t.Run("success: loaded values are defaults and the key is fixed", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		loaded := stored
		d.repository.
			On("PartByKey", mock.Anything, "R001").
			Return(&loaded, nil).
			Once()
		d.repository.
			On("UpdatePart", mock.Anything, mock.MatchedBy(func(p model.Part) bool {
				return p.KicadPartNumber == "R001" && p.ID == stored.ID && p.Description == "B"
			})).
			Return(nil).
			Once()
		d.producer.
			On("SendCatalogChanged", mock.Anything, mock.MatchedBy(func(e model.ChangeEvent) bool {
				return e.Action == model.ActionUpdated && e.ID == stored.ID
			})).
			Return(nil).
			Once()

		dlg, err := newSvc(d).NewEditPartDialog(context.Background(), "R001")
		require.NoError(t, err)
		assert.Equal(t, stored, dlg.Values())
		assert.Equal(t, workflow.KindEditPart, dlg.Kind())

		values := dlg.Values()
		values.Description = "B"
		values.KicadPartNumber = ""
		values.ID = uuid.Nil

		require.NoError(t, dlg.Submit(context.Background(), values))
		assert.True(t, dlg.Closed())
		assert.Equal(t, stored.ID, dlg.Values().ID)
		assert.Equal(t, "R001", dlg.Values().KicadPartNumber)
		assert.EqualValues(t, 1, d.refreshes.Load())
	})

	t.Run("update not found: dialog stays open with not found error", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		loaded := stored
		d.repository.
			On("PartByKey", mock.Anything, "R001").
			Return(&loaded, nil).
			Once()
		d.repository.
			On("UpdatePart", mock.Anything, mock.Anything).
			Return(model.ErrPartNotFound).
			Once()

		dlg, err := newSvc(d).NewEditPartDialog(context.Background(), "R001")
		require.NoError(t, err)

		err = dlg.Submit(context.Background(), dlg.Values())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPartNotFound)
		assert.NotErrorIs(t, err, model.ErrPersistence)
		assert.Equal(t, workflow.StateOpen, dlg.State())
	})

	t.Run("read error: marked as persistence failure", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.
			On("PartByKey", mock.Anything, "R001").
			Return((*model.Part)(nil), errors.New("timeout")).
			Once()

		dlg, err := newSvc(d).NewEditPartDialog(context.Background(), "R001")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPersistence)
		assert.Nil(t, dlg)
	})
}

func TestServiceAddModuleDialog(t *testing.T) {
	t.Parallel()

	p1, p2 := uuid.New(), uuid.New()
	moduleID := uuid.New()
	keys := []model.PartKey{
		{ID: p1, KicadPartNumber: "R001"},
		{ID: p2, KicadPartNumber: "C001"},
	}

	type testCase struct {
		name   string
		module model.Module
		setup  func(d deps)
		assert func(t *testing.T, dlg *workflow.Dialog[model.Module], err error, d deps)
	}

	tests := []testCase{
		{
			name:   "unknown key: rejected before any write",
			module: model.Module{KicadPartNumber: "M001", Parts: []string{"R001", "X999"}},
			setup:  func(d deps) {},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Module], err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownPart)
				assert.ErrorContains(t, err, "X999")
				assert.Equal(t, workflow.StateRejected, dlg.Last())
				d.repository.AssertNotCalled(t, "CreateModule", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: resolved ids keep order and duplicates",
			module: model.Module{KicadPartNumber: "M001", Parts: []string{"C001", "R001", "C001"}},
			setup: func(d deps) {
				d.repository.
					On("CreateModule", mock.Anything,
						mock.MatchedBy(func(m model.Module) bool { return m.KicadPartNumber == "M001" }),
						[]uuid.UUID{p2, p1, p2},
					).
					Return(moduleID, nil).
					Once()
				d.producer.
					On("SendCatalogChanged", mock.Anything, mock.MatchedBy(func(e model.ChangeEvent) bool {
						return e.Entity == model.EntityModule && e.ID == moduleID
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Module], err error, d deps) {
				require.NoError(t, err)
				assert.True(t, dlg.Closed())
				assert.Equal(t, moduleID, dlg.Values().ID)
				assert.EqualValues(t, 1, d.refreshes.Load())
			},
		},
		{
			name:   "success: module without parts",
			module: model.Module{},
			setup: func(d deps) {
				d.repository.
					On("CreateModule", mock.Anything, model.Module{}, []uuid.UUID{}).
					Return(moduleID, nil).
					Once()
				d.producer.
					On("SendCatalogChanged", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Module], err error, d deps) {
				require.NoError(t, err)
				assert.True(t, dlg.Persisted())
			},
		},
		{
			name:   "repository error: nothing stored, dialog stays open",
			module: model.Module{KicadPartNumber: "M001", Parts: []string{"R001"}},
			setup: func(d deps) {
				d.repository.
					On("CreateModule", mock.Anything, mock.Anything, []uuid.UUID{p1}).
					Return(uuid.Nil, errors.New("foreign key violation")).
					Once()
			},
			assert: func(t *testing.T, dlg *workflow.Dialog[model.Module], err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPersistence)
				assert.Equal(t, workflow.StateOpen, dlg.State())
				assert.Equal(t, workflow.StatePersistFailed, dlg.Last())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.repository.On("PartKeys", mock.Anything).Return(keys, nil).Once()
			if tt.setup != nil {
				tt.setup(d)
			}

			dlg, res, err := newSvc(d).NewAddModuleDialog(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{"C001", "R001"}, res.Keys())

			err = dlg.Submit(context.Background(), tt.module)
			tt.assert(t, dlg, err, d)
		})
	}
}

func TestServiceAddModuleDialogKeysError(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.
		On("PartKeys", mock.Anything).
		Return(([]model.PartKey)(nil), errors.New("db down")).
		Once()

	dlg, _, err := newSvc(d).NewAddModuleDialog(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPersistence)
	assert.Nil(t, dlg)
}

func TestServiceAttachParts(t *testing.T) {
	t.Parallel()

	p1 := uuid.New()
	moduleID := uuid.New()
	keys := []model.PartKey{{ID: p1, KicadPartNumber: "R001"}}

	type testCase struct {
		name   string
		keys   []string
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	tests := []testCase{
		{
			name: "module not found",
			keys: []string{"R001"},
			setup: func(d deps) {
				d.repository.On("ModuleExists", mock.Anything, moduleID).Return(false, nil).Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrModuleNotFound)
				d.repository.AssertNotCalled(t, "AddModuleParts", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "unknown part key",
			keys: []string{"R001", "NOPE"},
			setup: func(d deps) {
				d.repository.On("ModuleExists", mock.Anything, moduleID).Return(true, nil).Once()
				d.repository.On("PartKeys", mock.Anything).Return(keys, nil).Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrUnknownPart)
				d.repository.AssertNotCalled(t, "AddModuleParts", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "link failure reported as persistence error",
			keys: []string{"R001"},
			setup: func(d deps) {
				d.repository.On("ModuleExists", mock.Anything, moduleID).Return(true, nil).Once()
				d.repository.On("PartKeys", mock.Anything).Return(keys, nil).Once()
				d.repository.
					On("AddModuleParts", mock.Anything, moduleID, []uuid.UUID{p1}).
					Return(errors.New("insert failed")).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPersistence)
			},
		},
		{
			name: "success",
			keys: []string{"R001", "R001"},
			setup: func(d deps) {
				d.repository.On("ModuleExists", mock.Anything, moduleID).Return(true, nil).Once()
				d.repository.On("PartKeys", mock.Anything).Return(keys, nil).Once()
				d.repository.
					On("AddModuleParts", mock.Anything, moduleID, []uuid.UUID{p1, p1}).
					Return(nil).
					Once()
				d.producer.
					On("SendCatalogChanged", mock.Anything, mock.MatchedBy(func(e model.ChangeEvent) bool {
						return e.Action == model.ActionLinked && e.ID == moduleID
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			err := newSvc(d).AttachParts(context.Background(), moduleID, tt.keys)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceAddSupplierDialog(t *testing.T) {
	t.Parallel()

	supplierID := uuid.New()

	t.Run("empty supplier is accepted", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("AddSupplier", mock.Anything, model.Supplier{}).Return(supplierID, nil).Once()
		d.producer.
			On("SendCatalogChanged", mock.Anything, mock.MatchedBy(func(e model.ChangeEvent) bool {
				return e.Entity == model.EntitySupplier && e.Key == "" && e.ID == supplierID
			})).
			Return(nil).
			Once()

		dlg := newSvc(d).NewAddSupplierDialog()
		require.NoError(t, dlg.Submit(context.Background(), model.Supplier{}))
		assert.True(t, dlg.Closed())
		assert.Equal(t, supplierID, dlg.Values().ID)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		s := model.Supplier{Name: gofakeit.Company(), Email: gofakeit.Email()}
		d.repository.On("AddSupplier", mock.Anything, s).Return(uuid.Nil, errors.New("boom")).Once()

		dlg := newSvc(d).NewAddSupplierDialog()
		err := dlg.Submit(context.Background(), s)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPersistence)
		assert.Equal(t, s, dlg.Values())
		assert.False(t, dlg.Closed())
	})
}

func TestServiceReads(t *testing.T) {
	t.Parallel()

	moduleID := uuid.New()

	t.Run("parts passes filter through", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		filter := model.PartsFilter{ComponentType: model.ComponentCapacitor}
		rows := []model.PartRow{{KicadPartNumber: "C001", ComponentType: model.ComponentCapacitor}}
		d.repository.On("Parts", mock.Anything, filter).Return(rows, nil).Once()

		got, err := newSvc(d).Parts(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("module parts not found passes through", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.
			On("ModuleParts", mock.Anything, moduleID).
			Return(([]model.ModulePart)(nil), model.ErrModuleNotFound).
			Once()

		_, err := newSvc(d).ModuleParts(context.Background(), moduleID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrModuleNotFound)
		assert.NotErrorIs(t, err, model.ErrPersistence)
	})

	t.Run("part details", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		p := fakePart("R001")
		d.repository.On("PartByKey", mock.Anything, "R001").Return(&p, nil).Once()

		got, err := newSvc(d).PartDetails(context.Background(), "R001")
		require.NoError(t, err)
		assert.Equal(t, &p, got)
	})
}
