package sweep_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/raheelusc/rocket-relations/internal/sweep"
)

var base = sweep.Inputs{
	Gamma:        1.2,
	Rs:           350,
	T0:           3500,
	RatioPeP0:    0.0125,
	RatioPaP0:    0.02,
	RatioAeAstar: 10,
}

var _ = Describe("Run", func() {
	It("evaluates both parameters on an inclusive grid", func() {
		s, err := sweep.Run(base, sweep.QuantityPeP0, 0.005, 0.05, 10)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Grid).To(HaveLen(10))
		Expect(s.Grid[0]).To(Equal(0.005))
		Expect(s.Grid[9]).To(BeNumerically("~", 0.05, 1e-12))
		Expect(s.Cstar).To(HaveLen(10))
		Expect(s.CF).To(HaveLen(10))

		for _, c := range s.Cstar {
			Expect(c).To(BeNumerically(">", 0))
		}
	})

	It("holds c* constant when only nozzle ratios vary", func() {
		s, err := sweep.Run(base, sweep.QuantityAeAstar, 2, 80, 20)
		Expect(err).NotTo(HaveOccurred())

		for _, c := range s.Cstar {
			Expect(c).To(Equal(s.Cstar[0]))
		}
	})

	It("reproduces the documented scalar case at a grid point", func() {
		s, err := sweep.Run(base, sweep.QuantityAeAstar, 10, 20, 2)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Cstar[0]).To(BeNumerically("~", 1706.6214, 1e-3))
		Expect(s.CF[0]).To(BeNumerically("~", 1.5423079, 1e-6))
	})

	It("rejects an unknown quantity", func() {
		_, err := sweep.Run(base, "chamber_pressure", 1, 2, 5)
		Expect(err).To(MatchError(ContainSubstring("unknown sweep quantity")))
	})

	It("rejects a degenerate grid", func() {
		_, err := sweep.Run(base, sweep.QuantityPeP0, 0.01, 0.05, 1)
		Expect(err).To(HaveOccurred())

		_, err = sweep.Run(base, sweep.QuantityPeP0, 0.05, 0.01, 5)
		Expect(err).To(HaveOccurred())
	})

	It("propagates domain errors with the offending grid value", func() {
		_, err := sweep.Run(base, sweep.QuantityGamma, 0.9, 1.4, 6)
		Expect(err).To(MatchError(ContainSubstring("gamma = 0.9")))
	})
})
