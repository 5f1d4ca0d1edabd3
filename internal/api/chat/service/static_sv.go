package chatService

// Clarification prompts and static information pages. These are fixed
// strings so repeated calls return byte-identical content.

const loanLimitsClarification = `I'd be happy to help you look up conforming loan limits. Could you please specify which state you're interested in? For example, you can ask:

- "What are the loan limits in CA?"
- "Show me conforming limits for Los Angeles County, California"
- "Loan limits in Texas"`

const amiClarification = `I can help you check HomeReady eligibility based on Area Median Income (AMI). Please provide:

1. **Annual Income** - The borrower's total household income
2. **State** - Two-letter state code (e.g., CA, TX)
3. **County** (optional) - For more accurate results

Example: "Is $75,000 income eligible for HomeReady in Los Angeles County, CA?"`

const loanLookupClarification = `## Loan Lookup Service

I can help you determine if a loan is owned by Fannie Mae. To perform a lookup, I'll need:

1. **Borrower's Last Name**
2. **Property Address** (street, city, state, zip)
3. **Last 4 digits of SSN** (optional, for more accurate results)

This service helps verify loan ownership for various purposes including:
- Refinance eligibility
- Modification programs
- Servicing transfers

Please provide the borrower details to proceed.

*Example: "Look up loan for borrower Smith at 123 Main St, Austin TX 78701"*`

const loanPricingClarification = `## Loan Pricing Service

I can calculate comprehensive loan pricing including LLPAs and SRPs. Please provide:

### Required Information
- **Loan Amount** (e.g., $400,000)
- **Credit Score** (e.g., 740)
- **LTV** (e.g., 80%)
- **Loan Purpose** (Purchase, Rate/Term Refi, Cash-out)

### Optional Parameters
- Property Type, Occupancy, State
- Lock Period, Product Type

*Example: "Get pricing for $350,000 loan, 720 credit score, 85% LTV, purchase"*`

const missionScoreClarification = `## Mission Score Calculator

Mission Score evaluates loans for affordable and sustainable lending goals.

### Score Levels
| Score | Description | Incentives |
|---|---|---|
| 3 | High Mission | Maximum LLPA credits |
| 2 | Moderate Mission | Standard incentives |
| 1 | Low Mission | Minimal incentives |
| 0 | Not Mission | No incentives |

### Criteria Evaluated
- First-time homebuyer status
- Income relative to AMI
- Property location (underserved areas)
- Affordable housing initiatives

*Provide loan details including state, income, and property info for scoring.*`

const propertyDataInfo = `## Property Data (UPD) Submission

The Uniform Property Dataset (UPD) service allows lenders to submit property data for:

- **Property Valuation** - Get automated property values
- **Appraisal Data** - Submit appraisal information
- **Collateral Analysis** - Property risk assessment

### Required Information
- Property Address (street, city, state, zip)
- Property Type (SFR, Condo, PUD, etc.)
- Legal Description
- Sale/Contract Price (if applicable)

Would you like to submit property data for valuation?`

const appraisalFindingsInfo = `## Appraisal Findings & CU Score

The Collateral Underwriter (CU) provides automated appraisal risk assessment.

### CU Risk Score Scale
| Score | Risk Level | Typical Action |
|---|---|---|
| 1.0-2.5 | Low | Minimal review needed |
| 2.5-3.5 | Medium | Standard review |
| 3.5-5.0 | High | Enhanced review required |

### What CU Evaluates
- Value consistency with market data
- Comparable selection quality
- Adjustment reasonableness
- Market condition accuracy

To get appraisal findings, I'll need a **Document File ID** from your submission.`

const duMessagesInfo = `## Desktop Underwriter (DU) Messages

DU provides automated underwriting recommendations and findings.

### DU Recommendations
| Recommendation | Description |
|---|---|
| Approve/Eligible | Meets GSE standards |
| Approve/Ineligible | Meets credit standards but has eligibility issue |
| Refer/Eligible | Needs manual underwriting |
| Refer with Caution | Higher risk, manual review required |
| Out of Scope | Cannot be processed by DU |

To retrieve DU messages, I'll need a **Casefile ID** from your DU submission.`

const miTerminationInfo = `## MI (Mortgage Insurance) Termination

I can evaluate whether a loan qualifies for MI termination.

### Termination Types
| Type | LTV Threshold | Process |
|---|---|---|
| Automatic | ≤78% | Servicer must cancel |
| Borrower Requested | ≤80% | Borrower initiates |
| Final | Midpoint of term | Automatic cancellation |

### Requirements
- Current on mortgage payments
- Good payment history (no 30+ day late in 12 months)
- LTV at or below threshold
- Property value supports LTV calculation

*Provide loan details to check MI termination eligibility.*`

const hiLoEligibilityInfo = `## High LTV Refinance (RefiNow/HiLo) Eligibility

The High LTV Refinance program helps underwater borrowers refinance.

### Program Highlights
| Feature | Detail |
|---|---|
| Max LTV | Up to 97% |
| Max CLTV | Up to 105% |
| Appraisal | Often waived |
| Income Limit | ≤80% AMI |
| Minimum Benefit | $50/month payment reduction |

### Requirements
- Loan must be owned by Fannie Mae
- Current on payments (0x30 in 6 months, 1x30 in 12 months)
- Original loan at least 12 months old
- Must result in tangible benefit

*Would you like to check a specific loan for HiLo eligibility?*`

const helpMenu = `# Welcome to RTLMAC - Real-Time Lending Machine AI Companion

I'm your assistant for accessing the complete Fannie Mae API ecosystem. Here's everything I can help you with:

## 📊 Public Market Data

| API | Description | Example |
|---|---|---|
| **Loan Limits** | Conforming limits by location | "Loan limits in California" |
| **Housing Pulse** | Market metrics & trends | "Housing market data for Texas" |
| **Manufactured Housing** | MH community statistics | "Manufactured housing in Florida" |
| **Opportunity Zones** | Tax incentive zones | "Opportunity zones in Nevada" |
| **Investor Tools** | MBS/Security data | "Show investor data for pool FN123456" |
| **Construction Spending** | Spending by sector | "Private residential construction spending" |

## 🏠 Originating & Underwriting

| API | Description | Example |
|---|---|---|
| **Loan Lookup** | Check Fannie Mae ownership | "Is loan owned by Fannie Mae?" |
| **AMI/HomeReady** | Income eligibility | "Is $70k income HomeReady eligible in TX?" |
| **Property Data** | UPD submission | "Submit property data" |
| **Appraisal/CU** | Collateral analysis | "Get appraisal findings" |
| **DU Messages** | Underwriting findings | "Get DU messages" |

## 💰 Pricing & Execution

| API | Description | Example |
|---|---|---|
| **Loan Pricing** | LLPAs & pricing | "Get pricing for $400k loan, 740 score" |
| **Mission Score** | Affordable lending score | "Calculate mission score" |
| **SRP Pricing** | Servicing premiums | "Get SRP pricing" |

## 🔧 Servicing

| API | Description | Example |
|---|---|---|
| **MI Termination** | Cancel mortgage insurance | "Check MI termination eligibility" |
| **HiLo/RefiNow** | High LTV refi eligibility | "Check HiLo eligibility" |

---

**Just ask in natural language!** I'll route your request to the appropriate API and format the results for you.`
