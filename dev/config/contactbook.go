package config

const DEFAULT_CONTACTBOOK_YML = `settings:
  # The contact book keeps accepting contacts past this size,
  # but warns you every time one is added.
  capacity-warning: 20

  # Go time layout used when showing a contact's birthdate.
  # e.g. "02/01/2006" for dd/MM/yyyy or "2006-01-02" for yyyy-mm-dd
  date-format: "02/01/2006"

log:
  # debug, info, warn or error
  level: warn
`
