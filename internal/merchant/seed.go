package merchant

import (
	"context"
	"errors"
	"fmt"
)

// SeedResult reports the outcome of a bulk seed run.
type SeedResult struct {
	Inserted int
	Skipped  int // duplicate handles, silently left as-is
}

// Seed batch-inserts reference records. Duplicate handles are skipped, not
// errors, so reseeding is idempotent. Any other storage error aborts the run.
func Seed(ctx context.Context, store Store, records []*Merchant) (*SeedResult, error) {
	res := &SeedResult{}
	for _, m := range records {
		err := store.Create(ctx, m)
		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, ErrMerchantExists):
			res.Skipped++
		default:
			return res, fmt.Errorf("seed %s: %w", m.Handle, err)
		}
	}
	return res, nil
}

// TrustedMerchants is the verified whitelist: large consumer brands with
// bank-confirmed legal entities.
func TrustedMerchants() []*Merchant {
	return []*Merchant{
		{Handle: "amazon@upi", LegalName: "Amazon Pay India Pvt Ltd", TrustScore: 100, Category: "Shopping", Verified: true},
		{Handle: "flipkart@ybl", LegalName: "Flipkart Internet Pvt Ltd", TrustScore: 100, Category: "Shopping", Verified: true},
		{Handle: "zomato@upi", LegalName: "Zomato Limited", TrustScore: 100, Category: "Food Tech", Verified: true},
		{Handle: "swiggy@upi", LegalName: "Swiggy Bundl Technologies", TrustScore: 100, Category: "Food Tech", Verified: true},
		{Handle: "dominos@icici", LegalName: "Jubilant FoodWorks Ltd", TrustScore: 100, Category: "Food", Verified: true},
		{Handle: "uber@axis", LegalName: "Uber India Systems Pvt Ltd", TrustScore: 100, Category: "Transport", Verified: true},
		{Handle: "ola@upi", LegalName: "ANI Technologies Pvt Ltd", TrustScore: 98, Category: "Transport", Verified: true},
		{Handle: "irctc@upi", LegalName: "Indian Railway Catering Corp", TrustScore: 100, Category: "Travel", Verified: true},
		{Handle: "googleplay@upi", LegalName: "Google India Digital Services", TrustScore: 100, Category: "Tech", Verified: true},
		{Handle: "netflix@ybl", LegalName: "Netflix Entertainment", TrustScore: 100, Category: "Entertainment", Verified: true},
		{Handle: "apple@upi", LegalName: "Apple India Pvt Ltd", TrustScore: 100, Category: "Tech", Verified: true},
		{Handle: "jio@upi", LegalName: "Reliance Jio Infocomm", TrustScore: 100, Category: "Telecom", Verified: true},
		{Handle: "airtel@upi", LegalName: "Bharti Airtel Limited", TrustScore: 100, Category: "Telecom", Verified: true},
		{Handle: "tatapower@upi", LegalName: "Tata Power Company", TrustScore: 100, Category: "Utilities", Verified: true},
		{Handle: "lic@upi", LegalName: "Life Insurance Corp of India", TrustScore: 100, Category: "Insurance", Verified: true},
		{Handle: "starbucks@okhdfc", LegalName: "Tata Starbucks Pvt Ltd", TrustScore: 98, Category: "Food", Verified: true},
		{Handle: "croma@upi", LegalName: "Infiniti Retail Ltd", TrustScore: 99, Category: "Electronics", Verified: true},
		{Handle: "nykaa@upi", LegalName: "FSN E-Commerce Ventures", TrustScore: 99, Category: "Beauty", Verified: true},
		{Handle: "myntra@upi", LegalName: "Myntra Designs Pvt Ltd", TrustScore: 99, Category: "Fashion", Verified: true},
		{Handle: "bookmyshow@upi", LegalName: "Bigtree Entertainment", TrustScore: 99, Category: "Entertainment", Verified: true},
		{Handle: "makemytrip@upi", LegalName: "MakeMyTrip India Pvt Ltd", TrustScore: 99, Category: "Travel", Verified: true},
		{Handle: "indigo@upi", LegalName: "InterGlobe Aviation Ltd", TrustScore: 99, Category: "Aviation", Verified: true},
		{Handle: "zerodha@upi", LegalName: "Zerodha Broking Ltd", TrustScore: 100, Category: "Finance", Verified: true},
		{Handle: "groww@upi", LegalName: "Nextbillion Technology", TrustScore: 100, Category: "Finance", Verified: true},
		{Handle: "cred@upi", LegalName: "Dreamplug Technologies", TrustScore: 99, Category: "Finance", Verified: true},
		{Handle: "decathlon@upi", LegalName: "Decathlon Sports India", TrustScore: 99, Category: "Sports", Verified: true},
		{Handle: "ikea@upi", LegalName: "IKEA India Pvt Ltd", TrustScore: 99, Category: "Furniture", Verified: true},
		{Handle: "bigbasket@upi", LegalName: "Supermarket Grocery Supplies", TrustScore: 99, Category: "Grocery", Verified: true},
		{Handle: "blinkit@upi", LegalName: "Grofers India Pvt Ltd", TrustScore: 98, Category: "Grocery", Verified: true},
		{Handle: "zepto@upi", LegalName: "KiranaKart Technologies", TrustScore: 98, Category: "Grocery", Verified: true},
		{Handle: "apollo247@upi", LegalName: "Apollo Hospitals Enterprise", TrustScore: 100, Category: "Healthcare", Verified: true},
		{Handle: "netmeds@upi", LegalName: "Netmeds Marketplace", TrustScore: 99, Category: "Healthcare", Verified: true},
		{Handle: "pharmeasy@upi", LegalName: "Axelia Solutions", TrustScore: 98, Category: "Healthcare", Verified: true},
		{Handle: "cultfit@upi", LegalName: "Curefit Healthcare", TrustScore: 98, Category: "Fitness", Verified: true},
	}
}

// KnownScams is the confirmed blacklist: handles reported and verified as
// fraudulent, pinned to score 0.
func KnownScams() []*Merchant {
	return []*Merchant{
		{Handle: "laxmi_chit_fund@ybl", LegalName: "Laxmi Chit Fund (Fake)", TrustScore: 0, Category: "Ponzi"},
		{Handle: "scheme_25_din@upi", LegalName: "25 Din Paisa Double", TrustScore: 0, Category: "Scam"},
		{Handle: "win_crore@paytm", LegalName: "KBC Lottery Winner", TrustScore: 0, Category: "Scam"},
		{Handle: "kyc_update@sbi", LegalName: "Fake SBI KYC Support", TrustScore: 0, Category: "Phishing"},
		{Handle: "refund_support@upi", LegalName: "PhonePe Refund Support", TrustScore: 0, Category: "Phishing"},
		{Handle: "customs_clearance@upi", LegalName: "Delhi Customs Officer", TrustScore: 0, Category: "Courier Scam"},
		{Handle: "job_fee@upi", LegalName: "Wipro Hiring Fee", TrustScore: 0, Category: "Job Scam"},
		{Handle: "data_entry_job@upi", LegalName: "Home Based Data Entry", TrustScore: 0, Category: "Job Scam"},
		{Handle: "friend_emergency@upi", LegalName: "Friend in ICU", TrustScore: 0, Category: "Social Eng"},
		{Handle: "olx_army@upi", LegalName: "Army Officer OLX", TrustScore: 0, Category: "Marketplace Scam"},
		{Handle: "qr_code_receive@upi", LegalName: "Scan to Receive Money", TrustScore: 0, Category: "QR Scam"},
		{Handle: "teamviewer_support@upi", LegalName: "AnyDesk QuickSupport", TrustScore: 0, Category: "Tech Support Scam"},
		{Handle: "loan_instant@upi", LegalName: "0% Interest Loan Approval", TrustScore: 0, Category: "Loan Scam"},
		{Handle: "crypto_doubler@eth", LegalName: "Elon Musk BTC Giveaway", TrustScore: 0, Category: "Crypto Scam"},
		{Handle: "dating_verify@upi", LegalName: "Tinder ID Verification", TrustScore: 0, Category: "Romance Scam"},
		{Handle: "sim_swap@airtel", LegalName: "4G to 5G Upgrade Fee", TrustScore: 0, Category: "SIM Swap"},
		{Handle: "gift_card@amazon", LegalName: "Amazon Gift Card Generator", TrustScore: 0, Category: "Phishing"},
		{Handle: "netflix_free@upi", LegalName: "Netflix Lifetime Free", TrustScore: 0, Category: "Phishing"},
		{Handle: "paytm_kyc@upi", LegalName: "Paytm KYC Suspended", TrustScore: 0, Category: "Phishing"},
	}
}

// LocalShops generates n graylist records (small shops with decent but
// unaudited trust) to give the registry realistic volume.
func LocalShops(n int) []*Merchant {
	shops := make([]*Merchant, 0, n)
	for i := 0; i < n; i++ {
		shops = append(shops, &Merchant{
			Handle:     fmt.Sprintf("shop_%d@paytm", i),
			LegalName:  fmt.Sprintf("Local Kirana Store %d", i),
			TrustScore: 90,
			Category:   "Retail",
			Verified:   true,
		})
	}
	return shops
}
