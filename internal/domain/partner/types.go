package partner

type ConnectionMode string

const (
	// ModeOAuth credentials come from the gateway's authorization-code flow
	// and can carry marketplace split instructions.
	ModeOAuth ConnectionMode = "oauth"
	// ModeManual credentials were pasted in by the partner; the gateway
	// rejects split fields for them.
	ModeManual ConnectionMode = "manual"
)

func (m ConnectionMode) IsValid() bool {
	return m == ModeOAuth || m == ModeManual
}

type Environment string

const (
	EnvTest       Environment = "test"
	EnvProduction Environment = "production"
)
