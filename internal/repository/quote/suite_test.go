//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/mobile-mechanic/platform/db/migrator"
	"github.com/you-humble/mobile-mechanic/platform/logger"
	"github.com/you-humble/mobile-mechanic/platform/testcontainers/path"
	"github.com/you-humble/mobile-mechanic/platform/testcontainers/postgres"
)

var (
	ctx  context.Context
	pgC  *postgres.Container
	repo *repository
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quote Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = postgres.NewContainer(ctx, postgres.WithStartupTimeout(90*time.Second))
	Expect(err).NotTo(HaveOccurred())

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pgC.Pool()), path.MigrationsDir())
	Expect(m.Up()).To(Succeed())

	repo = NewQuoteRepository(pgC.Pool())
})

var _ = AfterSuite(func() {
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning quotes table")
	_, err := pgC.Pool().Exec(ctx, "TRUNCATE TABLE quotes")
	Expect(err).NotTo(HaveOccurred())
})
