package batch_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cosmic/internal/batch"
	"github.com/san-kum/cosmic/internal/cosmo"
	"github.com/san-kum/cosmic/internal/integrators"
)

var concordance = cosmo.Params{H0: 71, OmegaM: 0.27, OmegaL: 0.73}

var _ = Describe("ReadRedshifts", func() {
	It("reads one redshift per line and skips blanks and comments", func() {
		zs, err := batch.ReadRedshifts(strings.NewReader("# redshifts\n0.5\n\n1\n  2.5  \n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(zs).To(Equal([]float64{0.5, 1, 2.5}))
	})

	It("accepts several redshifts on a line", func() {
		zs, err := batch.ReadRedshifts(strings.NewReader("0.1 0.2\n0.3\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(zs).To(HaveLen(3))
	})

	DescribeTable("rejects unusable values with the line number",
		func(input string, wantLine int) {
			_, err := batch.ReadRedshifts(strings.NewReader(input))
			Expect(err).To(MatchError(batch.ErrBadRedshift))

			var le *batch.LineError
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Line).To(Equal(wantLine))
			Expect(err.Error()).To(ContainSubstring("on line"))
		},
		Entry("non-numeric", "0.5\nabc\n", 2),
		Entry("zero", "1\n2\n0\n", 3),
		Entry("negative", "-1\n", 1),
		Entry("after a blank line", "1\n\nfoo\n", 3),
	)

	It("reports an empty input", func() {
		_, err := batch.ReadRedshifts(strings.NewReader("\n# nothing\n"))
		Expect(err).To(MatchError(batch.ErrEmpty))
	})
})

var _ = Describe("ReadParamFile", func() {
	It("reads parameters, count and redshifts", func() {
		in, err := batch.ReadParamFile(strings.NewReader("70 0.3 0.7\n3\n0.5\n1\n2\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Params).NotTo(BeNil())
		Expect(*in.Params).To(Equal(cosmo.Params{H0: 70, OmegaM: 0.3, OmegaL: 0.7}))
		Expect(in.Redshifts).To(Equal([]float64{0.5, 1, 2}))
	})

	It("stops at the declared count", func() {
		in, err := batch.ReadParamFile(strings.NewReader("70 0.3 0.7\n2\n0.5 1 2\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Redshifts).To(Equal([]float64{0.5, 1}))
	})

	It("fails when redshifts are missing", func() {
		_, err := batch.ReadParamFile(strings.NewReader("70 0.3 0.7\n4\n0.5\n"))
		Expect(err).To(MatchError(batch.ErrBadHeader))
	})

	It("fails on a malformed header", func() {
		_, err := batch.ReadParamFile(strings.NewReader("70 0.3\n1\n0.5\n"))
		Expect(err).To(MatchError(batch.ErrBadHeader))
	})

	It("validates the parameters", func() {
		_, err := batch.ReadParamFile(strings.NewReader("-70 0.3 0.7\n1\n0.5\n"))
		Expect(err).To(MatchError(cosmo.ErrHubbleNonPositive))
	})
})

var _ = Describe("ReadFile", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(body), 0644)).To(Succeed())
		return path
	}

	It("reads the parameter layout when asked", func() {
		in, err := batch.ReadFile(write("params.txt", "70 0.3 0.7\n2\n1\n2\n"), batch.LayoutParams)
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Params).To(Equal(&cosmo.Params{H0: 70, OmegaM: 0.3, OmegaL: 0.7}))
		Expect(in.Redshifts).To(Equal([]float64{1, 2}))
	})

	DescribeTable("reads plain lists as redshifts only",
		func(body string, want []float64) {
			in, err := batch.ReadFile(write("list.txt", body), batch.LayoutList)
			Expect(err).NotTo(HaveOccurred())
			Expect(in.Params).To(BeNil())
			Expect(in.Redshifts).To(Equal(want))
		},
		Entry("one per line", "0.5\n1\n", []float64{0.5, 1}),
		Entry("three then singles", "0.5 1 2\n3\n4\n5\n6\n", []float64{0.5, 1, 2, 3, 4, 5, 6}),
		Entry("shaped like a header", "70 0.3 0.7\n2\n1\n2\n", []float64{70, 0.3, 0.7, 2, 1, 2}),
	)

	It("wraps a missing file", func() {
		_, err := batch.ReadFile(filepath.Join(dir, "missing.txt"), batch.LayoutList)
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})

var _ = Describe("Run", func() {
	zs := []float64{0.1, 0.5, 1, 2, 3, 5}

	It("matches a single engine in input order", func() {
		res, err := batch.Run(context.Background(), concordance, zs, batch.Options{Workers: 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots).To(HaveLen(len(zs)))

		c := cosmo.FromParams(concordance)
		for i, z := range zs {
			c.SetRedshift(z)
			Expect(res.Snapshots[i]).To(Equal(c.Snapshot()))
		}
		Expect(res.Base.Z).To(BeZero())
		Expect(res.Params).To(Equal(concordance))
	})

	It("gives the reference distances at z = 1", func() {
		res, err := batch.Run(context.Background(), concordance, []float64{1}, batch.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots[0].DC).To(BeNumerically("~", 3317.41, 0.01))
	})

	It("uses a custom quadrature per worker", func() {
		res, err := batch.Run(context.Background(), concordance, zs, batch.Options{
			Workers:    3,
			Quadrature: func() integrators.Quadrature { return integrators.NewSimpson(2048) },
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Snapshots[2].DC).To(BeNumerically("~", 3317.41, 0.01))
	})

	It("rejects an unphysical cosmology", func() {
		_, err := batch.Run(context.Background(), cosmo.Params{H0: 0, OmegaM: 0.3, OmegaL: 0.7}, zs, batch.Options{})
		Expect(err).To(MatchError(cosmo.ErrHubbleNonPositive))
	})

	It("rejects an empty input", func() {
		_, err := batch.Run(context.Background(), concordance, nil, batch.Options{})
		Expect(err).To(MatchError(batch.ErrEmpty))
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := batch.Run(ctx, concordance, zs, batch.Options{Workers: 2})
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("writers", func() {
	var res *batch.Result

	BeforeEach(func() {
		var err error
		res, err = batch.Run(context.Background(), concordance, []float64{0.5, 1}, batch.Options{Workers: 2})
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes the tab-separated report", func() {
		var buf bytes.Buffer
		Expect(batch.WriteTSV(&buf, res)).To(Succeed())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(HavePrefix("# H_0 = 71"))
		Expect(lines[1]).To(HavePrefix("# z \t"))
		Expect(lines[3]).To(HavePrefix("1\t1658.7\t6634.81\t3317.41\t"))
	})

	It("writes the CSV table", func() {
		var buf bytes.Buffer
		Expect(batch.WriteCSV(&buf, res)).To(Succeed())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(ContainSubstring("Comoving Transverse Distance (Mpc)"))
	})
})
