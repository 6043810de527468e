package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/Djinn-Inc/djinn-sub001/internal/config"
)

var _ = Describe("Load", func() {
	var cleared []string

	BeforeEach(func() {
		cleared = []string{
			"BT_NETUID", "BT_NETWORK", "API_HOST", "API_PORT", "ODDS_API_KEY",
			"SPORTS_API_KEY", "ODDS_CACHE_TTL", "LINE_TOLERANCE", "MPC_PEER_TIMEOUT",
			"RATE_LIMIT_CAPACITY", "RATE_LIMIT_RATE", "HTTP_TIMEOUT",
		}
		for _, k := range cleared {
			os.Unsetenv(k)
		}
	})

	It("applies defaults matching the source's dataclass defaults", func() {
		// The default network is production, which requires a sports API key.
		os.Setenv("SPORTS_API_KEY", "test-key")
		defer os.Unsetenv("SPORTS_API_KEY")
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.BTNetuid).To(Equal(103))
		Expect(cfg.BTNetwork).To(Equal("finney"))
		Expect(cfg.APIPort).To(Equal(8421))
		Expect(cfg.MPCPeerTimeout).To(Equal(10 * time.Second))
		Expect(cfg.SharesTotal).To(Equal(10))
		Expect(cfg.SharesThreshold).To(Equal(7))
	})

	It("fails in production network without a sports API key", func() {
		os.Setenv("BT_NETWORK", "mainnet")
		defer os.Unsetenv("BT_NETWORK")
		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("overrides MPC_PEER_TIMEOUT from a fractional-seconds env var", func() {
		os.Setenv("MPC_PEER_TIMEOUT", "2.5")
		defer os.Unsetenv("MPC_PEER_TIMEOUT")
		os.Setenv("SPORTS_API_KEY", "test-key")
		defer os.Unsetenv("SPORTS_API_KEY")
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.MPCPeerTimeout).To(Equal(2500 * time.Millisecond))
	})

	It("rejects an out-of-range BT_NETUID", func() {
		os.Setenv("BT_NETUID", "70000")
		defer os.Unsetenv("BT_NETUID")
		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-numeric API_PORT", func() {
		os.Setenv("API_PORT", "not-a-port")
		defer os.Unsetenv("API_PORT")
		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})
