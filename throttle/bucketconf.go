package throttle

import (
	"errors"
	"time"
)

type BucketConf struct {
	Burst     int           // maximum number of tokens in the bucket
	Increment int           // how many tokens to add each period
	Period    time.Duration // how often to add Increment
}

func (c *BucketConf) Validate() error {
	if c.Burst <= 0 || c.Increment <= 0 || c.Period <= 0 {
		return errors.New("throttle: burst, increment and period must be positive")
	}
	return nil
}

// Conf is the `throttle` section of the core config.
type Conf struct {
	Enabled          bool `json:"enabled"`
	Burst            int  `json:"burst"`
	Increment        int  `json:"increment"`
	PeriodMS         int  `json:"period_ms"`
	CleanupCycleSec  int  `json:"cleanup_cycle_sec"`
	CleanupOlderThan int  `json:"cleanup_older_than_sec"`
}

func (c *Conf) SetDefaults() {
	if c.Burst == 0 {
		c.Burst = 20
	}
	if c.Increment == 0 {
		c.Increment = 1
	}
	if c.PeriodMS == 0 {
		c.PeriodMS = 500
	}
	if c.CleanupCycleSec == 0 {
		c.CleanupCycleSec = 60
	}
	if c.CleanupOlderThan == 0 {
		c.CleanupOlderThan = 600
	}
}

func (c *Conf) BucketConf() *BucketConf {
	return &BucketConf{
		Burst:     c.Burst,
		Increment: c.Increment,
		Period:    time.Duration(c.PeriodMS) * time.Millisecond,
	}
}

func (c *Conf) CleanupCycle() time.Duration {
	return time.Duration(c.CleanupCycleSec) * time.Second
}

func (c *Conf) CleanupAge() time.Duration {
	return time.Duration(c.CleanupOlderThan) * time.Second
}
