package keygen

import (
	"context"
	"math/big"
	"time"

	"rsacore/internal/arith"
	"rsacore/internal/domain"
	"rsacore/internal/logging"
)

// Service drives candidate search and key derivation.
type Service struct {
	tester  domain.PrimalityTester
	deriver domain.KeyDeriver
	logger  logging.Logger
	timeout time.Duration
}

// New returns a key generation service. A zero timeout means none; a nil
// logger discards.
func New(tester domain.PrimalityTester, deriver domain.KeyDeriver, logger logging.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{tester: tester, deriver: deriver, logger: logger, timeout: timeout}
}

// NextPrime returns the smallest probable prime >= max(seed, 2).
func (s *Service) NextPrime(ctx context.Context, seed *big.Int) (*big.Int, error) {
	if seed == nil {
		return nil, domain.Errorf("next prime", domain.ErrInvalidArgument, "missing seed")
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.nextPrime(ctx, seed)
}

// NextExponent returns the smallest n >= max(seed, 2) that is prime and
// coprime with totient.
func (s *Service) NextExponent(ctx context.Context, seed, totient *big.Int) (*big.Int, error) {
	if seed == nil || totient == nil {
		return nil, domain.Errorf("next exponent", domain.ErrInvalidArgument, "missing seed or totient")
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.nextExponent(ctx, seed, totient)
}

// Generate advances seedP and seedQ to distinct primes, advances seedN to a
// valid public exponent and derives the private exponent.
func (s *Service) Generate(ctx context.Context, seedP, seedQ, seedN *big.Int) (domain.KeyPair, error) {
	if seedP == nil || seedQ == nil || seedN == nil {
		return domain.KeyPair{}, domain.Errorf("generate", domain.ErrInvalidArgument, "missing seed")
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	p, err := s.nextPrime(ctx, seedP)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.logger.Info(ctx, "prime accepted", "role", "p", "seed", seedP.String(), "value", p.String())

	q, err := s.nextPrime(ctx, seedQ)
	if err != nil {
		return domain.KeyPair{}, err
	}
	if q.Cmp(p) == 0 {
		s.logger.Warn(ctx, "q equals p, advancing q", "value", q.String())
		if q, err = s.nextPrime(ctx, new(big.Int).Add(q, one)); err != nil {
			return domain.KeyPair{}, err
		}
	}
	s.logger.Info(ctx, "prime accepted", "role", "q", "seed", seedQ.String(), "value", q.String())

	totient := domain.Totient(p, q)
	n, err := s.nextExponent(ctx, seedN, totient)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.logger.Info(ctx, "exponent accepted", "seed", seedN.String(), "value", n.String(), "totient", totient.String())

	d, err := s.deriver.Derive(ctx, p, q, n)
	if err != nil {
		return domain.KeyPair{}, err
	}
	key := domain.NewKeyPair(p, q, n, d)
	s.logger.Info(ctx, "key derived", "modulus", key.Modulus.String(), "public_exponent", n.String(),
		logging.Redacted("private_exponent"))
	return key, nil
}

func (s *Service) nextPrime(ctx context.Context, seed *big.Int) (*big.Int, error) {
	c := new(big.Int).Set(seed)
	if c.Cmp(two) < 0 {
		c.Set(two)
	}
	for {
		if err := domain.ContextError(ctx, "next prime"); err != nil {
			return nil, err
		}
		ok, err := s.tester.IsProbablyPrime(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
		s.logger.Debug(ctx, "candidate not prime, incrementing", "candidate", c.String())
		c.Add(c, one)
	}
}

func (s *Service) nextExponent(ctx context.Context, seed, totient *big.Int) (*big.Int, error) {
	if totient.Sign() <= 0 {
		return nil, domain.Errorf("next exponent", domain.ErrInvalidArgument, "totient %s must be positive", totient)
	}
	c := new(big.Int).Set(seed)
	if c.Cmp(two) < 0 {
		c.Set(two)
	}
	for {
		if err := domain.ContextError(ctx, "next exponent"); err != nil {
			return nil, err
		}
		ok, err := s.tester.IsProbablyPrime(c)
		if err != nil {
			return nil, err
		}
		if ok {
			coprime, err := arith.Coprime(totient, c)
			if err != nil {
				return nil, err
			}
			if coprime {
				return c, nil
			}
			s.logger.Debug(ctx, "exponent shares a factor with totient, incrementing", "candidate", c.String())
		} else {
			s.logger.Debug(ctx, "exponent not prime, incrementing", "candidate", c.String())
		}
		c.Add(c, one)
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
