package templates

// issueTemplate is the full issue document. It is plain HTML with {{TOKEN}}
// placeholders, not a text/template: email-client CSS is full of braces and
// percent signs, and the assembler only ever substitutes literal tokens.
// Layout rules follow the usual email constraints: presentation tables,
// inline styles on every element, a single 600px column.
const issueTemplate = `<!DOCTYPE html>
<html lang="en" xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="color-scheme" content="dark">
  <meta name="supported-color-schemes" content="dark">
  <title>The Drop</title>
  <style>
    body { margin: 0; padding: 0; background-color: #09090B; }
    table { border-collapse: collapse; }
    img { border: 0; outline: none; }
    a { text-decoration: none; }
    @media only screen and (max-width: 620px) {
      .container { width: 100% !important; }
      .content-padding { padding: 16px 20px !important; }
      .header-padding { padding: 36px 20px !important; }
    }
  </style>
</head>
<body style="margin: 0; padding: 0; background-color: #09090B;">
  <div style="display: none; max-height: 0; overflow: hidden; mso-hide: all;">Your daily drop of markets, deals and the city.</div>
  <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" style="background-color: #09090B;">
    <tr>
      <td align="center" style="padding: 24px 12px;">
        <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" class="container" style="width: 600px; max-width: 600px;">

  <!-- Header -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" style="background-color: #111113; background-image: url('{{HEADER_BG_IMAGE}}'); background-size: cover; background-position: center; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="header-padding" align="center" style="padding: 48px 28px;">
            <p style="margin: 0 0 8px 0; font-size: 12px; font-weight: 600; color: #A5B4FC; text-transform: uppercase; letter-spacing: 0.24em;">Good Morning</p>
            <h1 style="margin: 0; font-size: 38px; font-weight: 800; color: #FFFFFF; letter-spacing: -0.02em;">THE DROP</h1>
            <p style="margin: 10px 0 0 0; font-size: 13px; color: #D4D4D8;">{{DATE}}</p>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Good Morning -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 12px 0; font-size: 11px; font-weight: 600; color: #818CF8; text-transform: uppercase; letter-spacing: 0.12em;">The Rundown</p>
            <p style="margin: 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">{{GOOD_MORNING_CONTENT}}</p>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Before the Bell -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #34D399; text-transform: uppercase; letter-spacing: 0.12em;">Before the Bell</p>
            <img src="{{EXEC_SUM_MARKET_IMAGE_URL}}" alt="Market snapshot" width="544" style="display: block; width: 100%; height: auto; border-radius: 8px; margin: 0 0 16px 0;">
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Markets</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{BEFORE_THE_BELL_MARKETS}}
            </ul>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Last Night's Numbers</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{BEFORE_THE_BELL_EARNINGS_LAST}}
            </ul>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">On Deck</p>
            <p style="margin: 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">{{BEFORE_THE_BELL_EARNINGS_UPCOMING}}</p>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Headline Roundup -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #F472B6; text-transform: uppercase; letter-spacing: 0.12em;">Headline Roundup</p>
            <ul style="margin: 0; padding: 0; list-style: none;">
{{HEADLINE_ROUNDUP}}
            </ul>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Pharma and Health Intel -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #22D3EE; text-transform: uppercase; letter-spacing: 0.12em;">Pharma &amp; Health Intel</p>
            <ul style="margin: 0; padding: 0; list-style: none;">
{{PHARMA_HEALTH_INTEL}}
            </ul>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Tech and AI -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #FBBF24; text-transform: uppercase; letter-spacing: 0.12em;">Tech &amp; AI</p>
            <ul style="margin: 0; padding: 0; list-style: none;">
{{TECH_AI}}
            </ul>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Deal Flow -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #FB923C; text-transform: uppercase; letter-spacing: 0.12em;">Deal Flow</p>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">M&amp;A</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{DEAL_FLOW_MA}}
            </ul>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Venture</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{DEAL_FLOW_VENTURE}}
            </ul>
            <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" style="background-color: #1C1C21; border-radius: 8px;">
              <tr>
                <td style="padding: 16px 20px;">
                  <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #A5B4FC;">Scout's Corner</p>
{{DEAL_FLOW_SCOUTING}}
                </td>
              </tr>
            </table>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- New York Minute -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #4ADE80; text-transform: uppercase; letter-spacing: 0.12em;">New York Minute</p>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">This Week in the City</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{NYC_EVENTS}}
            </ul>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Table for Two</p>
            <p style="margin: 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">{{NYC_RESTAURANT}}</p>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  {{NYC_CALLOUT_SECTION}}

  <!-- Culture Corner -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #E879F9; text-transform: uppercase; letter-spacing: 0.12em;">Culture Corner</p>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Sports Desk</p>
            <ul style="margin: 0 0 18px 0; padding: 0; list-style: none;">
{{CULTURE_SPORTS}}
            </ul>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Meme of the Day</p>
            <p style="margin: 0 0 18px 0; font-size: 15px; color: #E4E4E7; line-height: 1.6;">{{CULTURE_MEME}}</p>
            <p style="margin: 0 0 10px 0; font-size: 13px; font-weight: 600; color: #FAFAFA;">Terminally Online</p>
            <ul style="margin: 0; padding: 0; list-style: none;">
{{CULTURE_INTERNET}}
            </ul>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Reads of the Week -->
  <tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background-color: #18181B; border-radius: 12px; border: 1px solid #27272A;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 14px 0; font-size: 11px; font-weight: 600; color: #60A5FA; text-transform: uppercase; letter-spacing: 0.12em;">Reads of the Week</p>
            <ul style="margin: 0; padding: 0; list-style: none;">
{{READS_OF_THE_WEEK}}
            </ul>
          </td>
        </tr>
      </table>
    </td>
  </tr>

  <!-- Footer -->
  <tr>
    <td align="center" style="padding: 8px 28px 24px 28px;">
      <p style="margin: 0 0 6px 0; font-size: 12px; font-weight: 600; color: #71717A; text-transform: uppercase; letter-spacing: 0.18em;">The Drop</p>
      <p style="margin: 0; font-size: 12px; color: #52525B; line-height: 1.6;">Brewed before sunrise in New York City.<br>You're receiving this because you asked for it.</p>
    </td>
  </tr>

        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`

// nycCalloutTemplate is the optional "New Opening" teal card. It renders as a
// whole row so the assembler can drop it without leaving an empty shell.
const nycCalloutTemplate = `<tr>
    <td style="padding: 0 0 20px 0;">
      <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%" class="section-card" style="background: linear-gradient(135deg, #134E4A 0%, #0F766E 100%); border-radius: 12px; border: 1px solid #14B8A6;">
        <tr>
          <td class="content-padding" style="padding: 20px 28px;">
            <p style="margin: 0 0 6px 0; font-size: 11px; font-weight: 600; color: #5EEAD4; text-transform: uppercase; letter-spacing: 0.12em;">New Opening</p>
            <p style="margin: 0; font-size: 15px; color: #F0FDFA; line-height: 1.6;">
              {{NYC_CALLOUT_CONTENT}}
            </p>
          </td>
        </tr>
      </table>
    </td>
  </tr>`
