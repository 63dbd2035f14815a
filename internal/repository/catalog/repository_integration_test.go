//go:build integration

package repository_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/kicad-dblib/internal/model"
)

type repositoryParts interface {
	AddPart(ctx context.Context, p model.Part) (uuid.UUID, error)
	UpdatePart(ctx context.Context, p model.Part) error
	Parts(ctx context.Context, filter model.PartsFilter) ([]model.PartRow, error)
	PartByKey(ctx context.Context, key string) (*model.Part, error)
	PartKeys(ctx context.Context) ([]model.PartKey, error)
}

type repositoryModules interface {
	AddModule(ctx context.Context, m model.Module) (uuid.UUID, error)
	AddModuleParts(ctx context.Context, moduleID uuid.UUID, partIDs []uuid.UUID) error
	CreateModule(ctx context.Context, m model.Module, partIDs []uuid.UUID) (uuid.UUID, error)
	ModuleParts(ctx context.Context, moduleID uuid.UUID) ([]model.ModulePart, error)
	ModuleExists(ctx context.Context, moduleID uuid.UUID) (bool, error)
}

type repositorySuppliers interface {
	AddSupplier(ctx context.Context, s model.Supplier) (uuid.UUID, error)
}

func newPart(key string, ct model.ComponentType) model.Part {
	return model.Part{
		Description:            "desc " + key,
		Datasheet:              "https://example.com/" + key + ".pdf",
		FootprintRef:           "db_footprints:0402",
		SymbolRef:              "db_library:R",
		ModelRef:               "db_models:0402.step",
		KicadPartNumber:        key,
		ManufacturerPartNumber: "MFR-" + key,
		Manufacturer:           "Yageo",
		ManufacturerPartURL:    "https://example.com/parts/" + key,
		Note:                   "note",
		Value:                  "10k",
		ComponentType:          ct,
	}
}

func countRows(table string, where string, args ...any) int {
	var n int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table+" "+where, args...).Scan(&n)
	Expect(err).NotTo(HaveOccurred())
	return n
}

var _ = Describe("Catalog repository", func() {
	Context("parts", func() {
		It("AddPart then PartByKey returns the submitted values", func() {
			p := model.Part{
				KicadPartNumber:        "R001",
				FootprintRef:           "db_footprints:0402",
				SymbolRef:              "db_library:R",
				ManufacturerPartNumber: "MFR-1",
			}

			id, err := repo.AddPart(ctx, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(Equal(uuid.Nil))

			got, err := repo.PartByKey(ctx, "R001")
			Expect(err).NotTo(HaveOccurred())

			p.ID = id
			Expect(*got).To(Equal(p))
		})

		It("PartByKey returns ErrPartNotFound for a missing key", func() {
			_, err := repo.PartByKey(ctx, "NOPE")
			Expect(err).To(MatchError(model.ErrPartNotFound))
		})

		It("UpdatePart rewrites fields but keeps the key", func() {
			p := newPart("R001", model.ComponentResistor)
			p.Description = "A"
			id, err := repo.AddPart(ctx, p)
			Expect(err).NotTo(HaveOccurred())

			upd := newPart("R001", model.ComponentCapacitor)
			upd.Description = "B"
			upd.Value = "100n"
			Expect(repo.UpdatePart(ctx, upd)).To(Succeed())

			got, err := repo.PartByKey(ctx, "R001")
			Expect(err).NotTo(HaveOccurred())

			upd.ID = id
			Expect(*got).To(Equal(upd))
			Expect(got.KicadPartNumber).To(Equal("R001"))
		})

		It("UpdatePart on a missing key reports ErrPartNotFound", func() {
			err := repo.UpdatePart(ctx, newPart("GHOST", model.ComponentNone))
			Expect(err).To(MatchError(model.ErrPartNotFound))
		})

		It("AddPart accepts a duplicate business key", func() {
			_, err := repo.AddPart(ctx, newPart("R001", model.ComponentResistor))
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.AddPart(ctx, newPart("R001", model.ComponentResistor))
			Expect(err).NotTo(HaveOccurred())

			Expect(countRows("parts", "WHERE kicad_part_number = $1", "R001")).To(Equal(2))
		})

		It("Parts filters by component type", func() {
			for _, p := range []model.Part{
				newPart("R001", model.ComponentResistor),
				newPart("R002", model.ComponentResistor),
				newPart("C001", model.ComponentCapacitor),
				newPart("X001", model.ComponentNone),
			} {
				_, err := repo.AddPart(ctx, p)
				Expect(err).NotTo(HaveOccurred())
			}

			all, err := repo.Parts(ctx, model.PartsFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(4))

			resistors, err := repo.Parts(ctx, model.PartsFilter{ComponentType: model.ComponentResistor})
			Expect(err).NotTo(HaveOccurred())
			Expect(resistors).To(HaveLen(2))
			for _, row := range resistors {
				Expect(row.ComponentType).To(Equal(model.ComponentResistor))
				Expect(all).To(ContainElement(row))
			}

			Expect(all).To(ContainElement(model.PartRow{
				KicadPartNumber:        "C001",
				Description:            "desc C001",
				ComponentType:          model.ComponentCapacitor,
				Value:                  "10k",
				SymbolRef:              "db_library:R",
				FootprintRef:           "db_footprints:0402",
				Manufacturer:           "Yageo",
				ManufacturerPartNumber: "MFR-C001",
			}))
		})

		It("PartKeys returns every id/key pair", func() {
			r1, err := repo.AddPart(ctx, newPart("R001", model.ComponentResistor))
			Expect(err).NotTo(HaveOccurred())
			c1, err := repo.AddPart(ctx, newPart("C001", model.ComponentCapacitor))
			Expect(err).NotTo(HaveOccurred())

			keys, err := repo.PartKeys(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(keys).To(ConsistOf(
				model.PartKey{ID: r1, KicadPartNumber: "R001"},
				model.PartKey{ID: c1, KicadPartNumber: "C001"},
			))
		})
	})

	Context("modules", func() {
		var p1, p2 uuid.UUID

		BeforeEach(func() {
			var err error
			p1, err = repo.AddPart(ctx, newPart("R001", model.ComponentResistor))
			Expect(err).NotTo(HaveOccurred())
			p2, err = repo.AddPart(ctx, newPart("C001", model.ComponentCapacitor))
			Expect(err).NotTo(HaveOccurred())
		})

		It("AddModule then AddModuleParts stores exactly the given links", func() {
			u, err := repo.AddModule(ctx, model.Module{KicadPartNumber: "M001"})
			Expect(err).NotTo(HaveOccurred())
			Expect(u).NotTo(Equal(uuid.Nil))

			Expect(repo.AddModuleParts(ctx, u, []uuid.UUID{p1, p2})).To(Succeed())

			links, err := repo.ModuleParts(ctx, u)
			Expect(err).NotTo(HaveOccurred())
			Expect(links).To(ConsistOf(
				model.ModulePart{ModuleID: u, PartID: p1},
				model.ModulePart{ModuleID: u, PartID: p2},
			))
		})

		It("keeps duplicate selections as separate links", func() {
			u, err := repo.CreateModule(ctx, model.Module{KicadPartNumber: "M001"}, []uuid.UUID{p1, p1})
			Expect(err).NotTo(HaveOccurred())

			links, err := repo.ModuleParts(ctx, u)
			Expect(err).NotTo(HaveOccurred())
			Expect(links).To(HaveLen(2))
		})

		It("a failed AddModuleParts leaves the module with zero links", func() {
			u, err := repo.AddModule(ctx, model.Module{KicadPartNumber: "M001"})
			Expect(err).NotTo(HaveOccurred())

			err = repo.AddModuleParts(ctx, u, []uuid.UUID{p1, uuid.New()})
			Expect(err).To(HaveOccurred())

			Expect(countRows("module", "WHERE module_uuid = $1", u)).To(Equal(1))
			Expect(countRows("module_parts", "WHERE module_uuid = $1", u)).To(Equal(0))
		})

		It("CreateModule writes module and links together", func() {
			u, err := repo.CreateModule(ctx, model.Module{KicadPartNumber: "M001"}, []uuid.UUID{p1, p2})
			Expect(err).NotTo(HaveOccurred())

			Expect(countRows("module", "WHERE module_uuid = $1", u)).To(Equal(1))
			Expect(countRows("module_parts", "WHERE module_uuid = $1", u)).To(Equal(2))
		})

		It("CreateModule rolls back the module row when a link fails", func() {
			_, err := repo.CreateModule(ctx, model.Module{KicadPartNumber: "M001"}, []uuid.UUID{p1, uuid.New()})
			Expect(err).To(HaveOccurred())

			Expect(countRows("module", "")).To(Equal(0))
			Expect(countRows("module_parts", "")).To(Equal(0))
		})

		It("CreateModule without parts stores only the module", func() {
			u, err := repo.CreateModule(ctx, model.Module{KicadPartNumber: "M002"}, nil)
			Expect(err).NotTo(HaveOccurred())

			ok, err := repo.ModuleExists(ctx, u)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			links, err := repo.ModuleParts(ctx, u)
			Expect(err).NotTo(HaveOccurred())
			Expect(links).To(BeEmpty())
		})

		It("ModuleParts reports ErrModuleNotFound for an unknown module", func() {
			_, err := repo.ModuleParts(ctx, uuid.New())
			Expect(err).To(MatchError(model.ErrModuleNotFound))
		})
	})

	Context("suppliers", func() {
		It("AddSupplier stores one row", func() {
			id, err := repo.AddSupplier(ctx, model.Supplier{
				Name:    "Mouser",
				Address: "1000 N Main St",
				WebURL:  "https://mouser.com",
				Phone:   "+1 800 346 6873",
				Email:   "sales@mouser.com",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).NotTo(Equal(uuid.Nil))

			var name, email string
			err = pool.QueryRow(ctx,
				"SELECT supplier_name, supplier_email FROM supplier WHERE supplier_uuid = $1", id,
			).Scan(&name, &email)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Mouser"))
			Expect(email).To(Equal("sales@mouser.com"))
		})

		It("accepts an empty supplier", func() {
			_, err := repo.AddSupplier(ctx, model.Supplier{})
			Expect(err).NotTo(HaveOccurred())
			Expect(countRows("supplier", "")).To(Equal(1))
		})
	})
})
